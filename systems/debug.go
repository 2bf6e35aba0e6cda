package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/components"
	cfg "github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/fonts"
	"github.com/automoto/tilestage/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type boxed interface {
	Box() (x, y, w, h float64)
}

type moving interface {
	Speed() float64
	MotionAngle() float64
}

type framed interface {
	KeyFrameIndex() (int, error)
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).Camera

	if cfg.Debug.ShowBounds {
		if levelEntry, ok := components.Level.First(e.World); ok {
			if w, h, err := components.Level.Get(levelEntry).Bounds.Size(); err == nil {
				strokeWorldRect(screen, cam, 0, 0, w, h, cfg.Debug.WorldColor)
			}
		}
		for _, a := range Actors(e) {
			if b, ok := a.Entity.(boxed); ok {
				x, y, w, h := b.Box()
				strokeWorldRect(screen, cam, x, y, w, h, cfg.Debug.BoundColor)
			}
		}
	}

	if cfg.Debug.ShowHUD && fonts.HUD.Loaded() {
		drawHUD(e, screen)
	}
}

func drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	for i, line := range hudLines(e, ebiten.ActualTPS()) {
		text.Draw(screen, line, fonts.HUD.Get(), 8, 16+i*16, cfg.Debug.HUDColor)
	}
}

// hudLines describes the level and the camera target.
func hudLines(e *ecs.ECS, tps float64) []string {
	var lines []string

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry); level.Map != "" {
			layers := 0
			tags.TileLayer.Each(e.World, func(*donburi.Entry) {
				layers++
			})
			lines = append(lines, fmt.Sprintf("map %s  tile layers %d", level.Map, layers))
		}
	}

	line := fmt.Sprintf("TPS %.0f", tps)
	if targetEntry, ok := tags.CameraTarget.First(e.World); ok {
		entity := components.Actor.Get(targetEntry).Entity
		if m, ok := entity.(moving); ok {
			line += fmt.Sprintf("  speed %.1f  angle %.0f", m.Speed(), m.MotionAngle())
		}
		if f, ok := entity.(framed); ok {
			if idx, err := f.KeyFrameIndex(); err == nil {
				line += fmt.Sprintf("  frame %d", idx)
			}
		}
	}
	return append(lines, line)
}

// strokeWorldRect outlines a world-space rectangle through the camera.
func strokeWorldRect(screen *ebiten.Image, cam *camera.Camera, x, y, w, h float64, c color.Color) {
	x0, y0 := cam.WorldToScreen(x, y)
	x1, y1 := cam.WorldToScreen(x+w, y+h)
	sw, sh := float32(x1-x0), float32(y1-y0)

	vector.DrawFilledRect(screen, float32(x0), float32(y0), sw, 1, c, false)
	vector.DrawFilledRect(screen, float32(x0), float32(y1)-1, sw, 1, c, false)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), 1, sh, c, false)
	vector.DrawFilledRect(screen, float32(x1)-1, float32(y0), 1, sh, c, false)
}
