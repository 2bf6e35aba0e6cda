package archetypes

import (
	"github.com/automoto/tilestage/components"
	cfg "github.com/automoto/tilestage/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		components.Actor,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
