// Package actor provides a positioned, animated entity that moves with its
// own kinematics and stays inside the stage's world bounds.
package actor

import (
	"github.com/automoto/tilestage/animation"
	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/kinematics"
	"github.com/automoto/tilestage/render"
	"github.com/automoto/tilestage/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// Host is the scene an actor registers with.
type Host interface {
	AddActor(e components.Entity)
	WorldBounds() *world.Bounds
}

// Actor composes a kinematics engine and an animation clock. Rotation is in
// degrees; Origin is the rotation and scale pivot relative to Position.
type Actor struct {
	*kinematics.Engine

	Position math.Vec2
	Width    float64
	Height   float64
	Origin   math.Vec2
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Visible  bool
	Opacity  float64

	clock  animation.Clock
	bounds *world.Bounds
}

// New creates an actor at (x, y) using the configured movement defaults and
// registers it with host. A nil host leaves the actor detached and without
// bounds.
func New(x, y float64, host Host) *Actor {
	a := &Actor{
		Engine:   kinematics.New(config.Actor.Acceleration, config.Actor.MaxSpeed, config.Actor.Deceleration),
		Position: math.Vec2{X: x, Y: y},
		ScaleX:   1,
		ScaleY:   1,
		Visible:  true,
		Opacity:  1,
	}
	if host != nil {
		a.bounds = host.WorldBounds()
		host.AddActor(a)
	}
	return a
}

// SetWorldBounds replaces the bounds this actor is clamped into.
func (a *Actor) SetWorldBounds(b *world.Bounds) { a.bounds = b }

func (a *Actor) WorldBounds() *world.Bounds { return a.bounds }

// Act runs one frame: physics, then the animation clock, then the bounds
// clamp.
func (a *Actor) Act(dt float64) error {
	a.ApplyPhysics(&a.Position, dt)
	a.clock.Act(dt)
	return a.BoundToWorld()
}

// BoundToWorld moves the actor so its box lies inside the world bounds.
func (a *Actor) BoundToWorld() error {
	x, y, err := a.bounds.Clamp(a.Position.X, a.Position.Y, a.Width, a.Height)
	if err != nil {
		return err
	}
	a.Position = math.Vec2{X: x, Y: y}
	return nil
}

// AccelerateForward accelerates in the direction the actor is rotated to.
func (a *Actor) AccelerateForward() {
	a.Engine.AccelerateForward(a.Rotation)
}

// Draw submits the current frame. Hidden actors and actors without an
// animation draw nothing.
func (a *Actor) Draw(batch render.Batch) {
	if !a.Visible {
		return
	}
	frame, err := a.clock.KeyFrame()
	if err != nil {
		return
	}
	a.drawFrame(batch, frame)
}

func (a *Actor) drawFrame(batch render.Batch, frame *ebiten.Image) {
	tinter, tint := batch.(render.Tinter)
	if tint {
		tinter.SetColor(1, 1, 1, float32(a.Opacity))
	}
	batch.Draw(frame, a.Position.X, a.Position.Y, a.Origin.X, a.Origin.Y,
		a.Width, a.Height, a.ScaleX, a.ScaleY, a.Rotation)
	if tint {
		tinter.SetColor(1, 1, 1, 1)
	}
}

// SetAnimation switches frame sets and resizes the actor to the first
// frame, pivoting about its centre. Elapsed animation time is kept.
func (a *Actor) SetAnimation(fs *animation.FrameSet) {
	w, h := a.clock.SetAnimation(fs)
	if fs == nil {
		return
	}
	a.SetSize(float64(w), float64(h))
	a.SetOrigin(float64(w)/2, float64(h)/2)
}

func (a *Actor) Animation() *animation.FrameSet { return a.clock.Animation() }

func (a *Actor) SetAnimationPaused(paused bool) { a.clock.SetPaused(paused) }

func (a *Actor) AnimationPaused() bool { return a.clock.Paused() }

// IsAnimationFinished reports whether a play-once animation is done. It
// fails with animation.ErrNoAnimation when none is set.
func (a *Actor) IsAnimationFinished() (bool, error) { return a.clock.IsFinished() }

// ElapsedTime is the animation time accumulated so far.
func (a *Actor) ElapsedTime() float64 { return a.clock.Elapsed() }

// KeyFrameIndex is the frame Draw would show now.
func (a *Actor) KeyFrameIndex() (int, error) { return a.clock.KeyFrameIndex() }

func (a *Actor) SetPosition(x, y float64) { a.Position = math.Vec2{X: x, Y: y} }

func (a *Actor) MoveBy(dx, dy float64) { a.Position = a.Position.Add(math.Vec2{X: dx, Y: dy}) }

func (a *Actor) SetSize(w, h float64) { a.Width, a.Height = w, h }

func (a *Actor) SetOrigin(x, y float64) { a.Origin = math.Vec2{X: x, Y: y} }

func (a *Actor) SetRotation(deg float64) { a.Rotation = deg }

func (a *Actor) RotateBy(deg float64) { a.Rotation += deg }

func (a *Actor) SetScale(sx, sy float64) { a.ScaleX, a.ScaleY = sx, sy }

func (a *Actor) SetVisible(v bool) { a.Visible = v }

func (a *Actor) SetOpacity(o float64) { a.Opacity = o }

// CenterAtPosition places the actor so its centre is at (x, y).
func (a *Actor) CenterAtPosition(x, y float64) {
	a.SetPosition(x-a.Width/2, y-a.Height/2)
}

// Center returns the centre of the actor's box.
func (a *Actor) Center() math.Vec2 {
	return math.Vec2{X: a.Position.X + a.Width/2, Y: a.Position.Y + a.Height/2}
}

// Box returns the axis-aligned box used for clamping.
func (a *Actor) Box() (x, y, w, h float64) {
	return a.Position.X, a.Position.Y, a.Width, a.Height
}

// AlignCamera centres cam on the actor, keeping the view inside the world.
func (a *Actor) AlignCamera(cam *camera.Camera) {
	cam.Position = a.Center()
	cam.ClampTo(a.bounds)
	cam.Update()
}
