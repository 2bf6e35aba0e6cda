package components

import (
	"github.com/automoto/tilestage/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	*camera.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
