package components

import (
	"github.com/automoto/tilestage/render"
	"github.com/yohamta/donburi"
)

// Entity is anything a stage advances and draws once per frame.
type Entity interface {
	Act(dt float64) error
	Draw(batch render.Batch)
}

// ActorData wraps an entity registered with a stage. Order is the insertion
// sequence, which is also the draw order.
type ActorData struct {
	Entity Entity
	Order  int
}

var Actor = donburi.NewComponentType[ActorData]()
