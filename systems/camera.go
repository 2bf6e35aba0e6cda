package systems

import (
	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type centered interface {
	Center() math.Vec2
}

// UpdateCamera runs an active pan, or else eases the camera towards the
// CameraTarget actor. The view is kept inside the level bounds.
func UpdateCamera(e *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)

	if cam.Panning() {
		cam.Act(dt)
	} else if targetEntry, ok := tags.CameraTarget.First(e.World); ok {
		if target, ok := components.Actor.Get(targetEntry).Entity.(centered); ok {
			cam.Follow(target.Center(), config.Camera.FollowSmoothing)
		}
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		cam.ClampTo(components.Level.Get(levelEntry).Bounds)
	}
	cam.Update()
}
