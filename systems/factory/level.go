package factory

import (
	"github.com/automoto/tilestage/archetypes"
	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the entry holding the stage's shared world bounds.
func CreateLevel(ecs *ecs.ECS, bounds *world.Bounds) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{Bounds: bounds})
	return level
}
