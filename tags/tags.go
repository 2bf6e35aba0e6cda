package tags

import "github.com/yohamta/donburi"

var (
	// CameraTarget marks the actor the main camera follows
	CameraTarget = donburi.NewTag().SetName("CameraTarget")
	// TileLayer marks background tile layers
	TileLayer = donburi.NewTag().SetName("TileLayer")
)
