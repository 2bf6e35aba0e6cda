package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Actors returns every registered entity in insertion order.
func Actors(e *ecs.ECS) []components.ActorData {
	var out []components.ActorData
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, *components.Actor.Get(entry))
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// UpdateEntities advances every entity by dt seconds. The first error stops
// the frame and is returned to the caller.
func UpdateEntities(e *ecs.ECS, dt float64) error {
	for _, a := range Actors(e) {
		if err := a.Entity.Act(dt); err != nil {
			return fmt.Errorf("actor %d: %w", a.Order, err)
		}
	}
	return nil
}

// DrawEntities submits every entity to batch in insertion order, so entities
// added first end up underneath.
func DrawEntities(e *ecs.ECS, batch render.Batch) {
	for _, a := range Actors(e) {
		a.Entity.Draw(batch)
	}
}
