package factory

import (
	"github.com/automoto/tilestage/archetypes"
	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, cam *camera.Camera) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, &components.CameraData{Camera: cam})
	return entry
}
