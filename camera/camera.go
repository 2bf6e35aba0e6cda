// Package camera provides an orthographic 2D camera: a world position seen
// at the centre of a fixed-size viewport.
package camera

import (
	gomath "math"

	"github.com/automoto/tilestage/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

type Camera struct {
	Position       math.Vec2 // world point at the centre of the viewport
	ViewportWidth  float64
	ViewportHeight float64
	Zoom           float64

	view ebiten.GeoM
	panX *gween.Tween
	panY *gween.Tween
}

// New returns a camera with a width x height viewport looking at the top
// left corner of the world.
func New(width, height float64) *Camera {
	c := &Camera{}
	c.SetToOrtho(width, height)
	return c
}

// SetToOrtho resizes the viewport and recentres the camera so that world
// (0,0) is the top left of the view.
func (c *Camera) SetToOrtho(width, height float64) {
	c.ViewportWidth = width
	c.ViewportHeight = height
	c.Position = math.Vec2{X: width / 2, Y: height / 2}
	c.Zoom = 1
	c.Update()
}

// Update recomputes the view matrix. Call it after changing Position or
// Zoom and before drawing.
func (c *Camera) Update() {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	c.view.Reset()
	c.view.Translate(-c.Position.X, -c.Position.Y)
	c.view.Scale(zoom, zoom)
	c.view.Translate(c.ViewportWidth/2, c.ViewportHeight/2)
}

// View is the world-to-screen matrix as of the last Update.
func (c *Camera) View() ebiten.GeoM {
	return c.view
}

// WorldToScreen applies the view matrix to a world point.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return c.view.Apply(x, y)
}

// VisibleRect returns the world-space rectangle covered by the viewport.
func (c *Camera) VisibleRect() (x, y, w, h float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	w = c.ViewportWidth / zoom
	h = c.ViewportHeight / zoom
	return c.Position.X - w/2, c.Position.Y - h/2, w, h
}

// Follow moves the camera a fraction of the way towards target.
func (c *Camera) Follow(target math.Vec2, smoothing float64) {
	c.Position.X += (target.X - c.Position.X) * smoothing
	c.Position.Y += (target.Y - c.Position.Y) * smoothing
}

// ClampTo keeps the view inside the world so the level always fills the
// screen. Worlds smaller than the view are centred. Uninitialized bounds
// leave the camera where it is.
func (c *Camera) ClampTo(b *world.Bounds) {
	worldW, worldH, err := b.Size()
	if err != nil {
		return
	}
	_, _, viewW, viewH := c.VisibleRect()
	c.Position.X = clampCentre(c.Position.X, viewW, worldW)
	c.Position.Y = clampCentre(c.Position.Y, viewH, worldH)
}

func clampCentre(pos, view, limit float64) float64 {
	if view >= limit {
		return limit / 2
	}
	return gomath.Max(view/2, gomath.Min(limit-view/2, pos))
}

// PanTo starts a tweened move of the camera centre to (x, y).
func (c *Camera) PanTo(x, y, seconds float64) {
	if seconds <= 0 {
		c.Position = math.Vec2{X: x, Y: y}
		c.panX, c.panY = nil, nil
		return
	}
	c.panX = gween.New(float32(c.Position.X), float32(x), float32(seconds), ease.OutQuad)
	c.panY = gween.New(float32(c.Position.Y), float32(y), float32(seconds), ease.OutQuad)
}

// Panning reports whether a PanTo is still in progress.
func (c *Camera) Panning() bool {
	return c.panX != nil
}

// Act advances an active pan by dt seconds.
func (c *Camera) Act(dt float64) {
	if c.panX == nil {
		return
	}
	x, doneX := c.panX.Update(float32(dt))
	y, doneY := c.panY.Update(float32(dt))
	c.Position = math.Vec2{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		c.panX, c.panY = nil, nil
	}
}
