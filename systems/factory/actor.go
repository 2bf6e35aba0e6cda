package factory

import (
	"github.com/automoto/tilestage/archetypes"
	"github.com/automoto/tilestage/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor wraps e in an entry. order decides when it acts and draws
// relative to other entities.
func CreateActor(ecs *ecs.ECS, e components.Entity, order int) *donburi.Entry {
	entry := archetypes.Actor.Spawn(ecs)
	components.Actor.Set(entry, &components.ActorData{
		Entity: e,
		Order:  order,
	})
	return entry
}
