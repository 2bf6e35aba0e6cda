package components

import (
	"github.com/automoto/tilestage/world"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Bounds *world.Bounds
	Map    string // tile map the bounds were measured from, if any
}

var Level = donburi.NewComponentType[LevelData]()
