package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, drawn in declaration order
const (
	LayerWorld ecs.LayerID = iota
	LayerDebug
)
