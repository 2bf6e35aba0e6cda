package actor

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/automoto/tilestage/animation"
	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/faults"
	"github.com/automoto/tilestage/world"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeHost struct {
	bounds *world.Bounds
	added  []components.Entity
}

func (h *fakeHost) AddActor(e components.Entity) { h.added = append(h.added, e) }

func (h *fakeHost) WorldBounds() *world.Bounds { return h.bounds }

type drawCall struct {
	frame              *ebiten.Image
	x, y, ox, oy, w, h float64
	sx, sy, rot        float64
}

type fakeBatch struct {
	drawing bool
	calls   []drawCall
	alphas  []float32
}

func (b *fakeBatch) Begin() { b.drawing = true }

func (b *fakeBatch) End() { b.drawing = false }

func (b *fakeBatch) Drawing() bool { return b.drawing }

func (b *fakeBatch) Target() *ebiten.Image { return nil }

func (b *fakeBatch) SetColor(r, g, bl, a float32) {
	b.alphas = append(b.alphas, a)
}

func (b *fakeBatch) Draw(frame *ebiten.Image, x, y, ox, oy, w, h, sx, sy, rot float64) {
	b.calls = append(b.calls, drawCall{frame, x, y, ox, oy, w, h, sx, sy, rot})
}

func newHost(t *testing.T, w, h float64) *fakeHost {
	t.Helper()
	b, err := world.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return &fakeHost{bounds: b}
}

func frameSet(t *testing.T, n, w, h int, d float64, mode animation.PlayMode) *animation.FrameSet {
	t.Helper()
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = ebiten.NewImage(w, h)
	}
	fs, err := animation.NewFrameSet(d, frames, mode)
	if err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestNew_RegistersWithHost(t *testing.T) {
	host := newHost(t, 800, 600)
	a := New(10, 20, host)

	if len(host.added) != 1 || host.added[0] != a {
		t.Fatal("actor should register itself with the host")
	}
	if a.WorldBounds() != host.bounds {
		t.Error("actor should share the host's bounds")
	}
	if a.Position.X != 10 || a.Position.Y != 20 {
		t.Errorf("expected position (10, 20), got (%v, %v)", a.Position.X, a.Position.Y)
	}
}

func TestBoundToWorld(t *testing.T) {
	a := New(795, 595, newHost(t, 800, 600))
	a.SetSize(20, 20)

	if err := a.BoundToWorld(); err != nil {
		t.Fatal(err)
	}
	if a.Position.X != 780 || a.Position.Y != 580 {
		t.Errorf("expected (780, 580), got (%v, %v)", a.Position.X, a.Position.Y)
	}

	if err := a.BoundToWorld(); err != nil {
		t.Fatal(err)
	}
	if a.Position.X != 780 || a.Position.Y != 580 {
		t.Errorf("BoundToWorld() not idempotent: got (%v, %v)", a.Position.X, a.Position.Y)
	}

	a.SetPosition(-3, -4)
	_ = a.BoundToWorld()
	if a.Position.X != 0 || a.Position.Y != 0 {
		t.Errorf("expected (0, 0), got (%v, %v)", a.Position.X, a.Position.Y)
	}
}

func TestBoundToWorld_Uninitialized(t *testing.T) {
	a := New(900, 900, &fakeHost{bounds: &world.Bounds{}})
	a.SetSize(10, 10)

	err := a.BoundToWorld()
	if !errors.Is(err, world.ErrBoundsUninitialized) || !errors.Is(err, faults.ErrPrecondition) {
		t.Fatalf("BoundToWorld() error = %v, want uninitialized bounds", err)
	}
	if a.Position.X != 900 {
		t.Error("failed clamp must leave the position untouched")
	}

	detached := New(0, 0, nil)
	if err := detached.Act(0.1); !errors.Is(err, world.ErrBoundsUninitialized) {
		t.Errorf("Act() on a detached actor error = %v", err)
	}
}

func TestAct_AccelerateForwardClamped(t *testing.T) {
	a := New(100, 100, newHost(t, 800, 600))
	a.SetSize(10, 10)
	a.SetAcceleration(100)
	a.SetMaxSpeed(50)
	a.SetDeceleration(0)
	a.SetRotation(0)

	a.AccelerateForward()
	if err := a.Act(1); err != nil {
		t.Fatal(err)
	}

	if gomath.Abs(a.Speed()-50) > 1e-9 {
		t.Errorf("expected speed 50, got %v", a.Speed())
	}
	if gomath.Abs(a.Position.X-150) > 1e-9 || a.Position.Y != 100 {
		t.Errorf("expected position (150, 100), got (%v, %v)", a.Position.X, a.Position.Y)
	}
}

func TestAct_PhysicsThenAnimationThenClamp(t *testing.T) {
	a := New(780, 10, newHost(t, 800, 600))
	a.SetAnimation(frameSet(t, 4, 20, 20, 0.1, animation.Loop))
	a.SetDeceleration(0)
	a.SetMaxSpeed(1000)
	a.SetSpeed(100)

	if err := a.Act(0.35); err != nil {
		t.Fatal(err)
	}

	if a.Position.X != 780 {
		t.Errorf("expected actor pinned at right edge 780, got %v", a.Position.X)
	}
	idx, err := a.KeyFrameIndex()
	if err != nil {
		t.Fatal(err)
	}
	if idx != 3 {
		t.Errorf("expected frame 3 after 0.35s, got %d", idx)
	}
}

func TestAnimationPausedIndependentOfPhysics(t *testing.T) {
	a := New(0, 0, newHost(t, 800, 600))
	a.SetAnimation(frameSet(t, 2, 8, 8, 0.5, animation.Loop))
	a.SetAnimationPaused(true)
	a.SetDeceleration(0)
	a.SetSpeed(10)

	_ = a.Act(1)

	if a.ElapsedTime() != 0 {
		t.Errorf("paused animation should not advance, got %v", a.ElapsedTime())
	}
	if a.Position.X != 10 {
		t.Errorf("physics should still run while animation is paused, x = %v", a.Position.X)
	}
	if !a.AnimationPaused() {
		t.Error("AnimationPaused() = false")
	}
}

func TestSetAnimation_ResizesAndKeepsTime(t *testing.T) {
	a := New(0, 0, newHost(t, 800, 600))
	a.SetAnimation(frameSet(t, 2, 8, 8, 0.1, animation.Loop))
	_ = a.Act(0.25)

	a.SetAnimation(frameSet(t, 3, 32, 48, 0.2, animation.Normal))

	if a.Width != 32 || a.Height != 48 {
		t.Errorf("expected size 32x48, got %vx%v", a.Width, a.Height)
	}
	if a.Origin.X != 16 || a.Origin.Y != 24 {
		t.Errorf("expected origin (16, 24), got (%v, %v)", a.Origin.X, a.Origin.Y)
	}
	if a.ElapsedTime() != 0.25 {
		t.Errorf("elapsed time should carry over, got %v", a.ElapsedTime())
	}
	if done, err := a.IsAnimationFinished(); err != nil || done {
		t.Errorf("IsAnimationFinished() = %v, %v", done, err)
	}
}

func TestIsAnimationFinished_NoAnimation(t *testing.T) {
	a := New(0, 0, nil)
	if _, err := a.IsAnimationFinished(); !errors.Is(err, animation.ErrNoAnimation) {
		t.Errorf("IsAnimationFinished() error = %v, want ErrNoAnimation", err)
	}
}

func TestDraw(t *testing.T) {
	fs := frameSet(t, 4, 16, 16, 0.1, animation.Loop)

	t.Run("no animation draws nothing", func(t *testing.T) {
		b := &fakeBatch{}
		New(0, 0, nil).Draw(b)
		if len(b.calls) != 0 {
			t.Errorf("expected no draw calls, got %d", len(b.calls))
		}
	})

	t.Run("hidden draws nothing", func(t *testing.T) {
		b := &fakeBatch{}
		a := New(0, 0, nil)
		a.SetAnimation(fs)
		a.SetVisible(false)
		a.Draw(b)
		if len(b.calls) != 0 {
			t.Errorf("expected no draw calls, got %d", len(b.calls))
		}
	})

	t.Run("one call with actor transform", func(t *testing.T) {
		b := &fakeBatch{}
		a := New(0, 0, newHost(t, 800, 600))
		a.SetAnimation(fs)
		a.SetPosition(40, 50)
		a.SetScale(2, 3)
		a.SetRotation(30)
		a.RotateBy(15)
		a.SetOpacity(0.5)
		a.SetAnimationPaused(true)
		_ = a.Act(0)

		a.Draw(b)

		if len(b.calls) != 1 {
			t.Fatalf("expected 1 draw call, got %d", len(b.calls))
		}
		c := b.calls[0]
		want := drawCall{fs.Frame(0), 40, 50, 8, 8, 16, 16, 2, 3, 45}
		if c != want {
			t.Errorf("Draw() call = %+v, want %+v", c, want)
		}
		if len(b.alphas) != 2 || b.alphas[0] != 0.5 || b.alphas[1] != 1 {
			t.Errorf("expected opacity tint then reset, got %v", b.alphas)
		}
	})
}

func TestCenterAndAlignCamera(t *testing.T) {
	a := New(0, 0, newHost(t, 2000, 2000))
	a.SetSize(20, 40)
	a.CenterAtPosition(1000, 1000)

	if a.Position.X != 990 || a.Position.Y != 980 {
		t.Errorf("CenterAtPosition() -> (%v, %v), want (990, 980)", a.Position.X, a.Position.Y)
	}
	if c := a.Center(); c.X != 1000 || c.Y != 1000 {
		t.Errorf("Center() = (%v, %v)", c.X, c.Y)
	}

	cam := camera.New(800, 600)
	a.AlignCamera(cam)
	if cam.Position.X != 1000 || cam.Position.Y != 1000 {
		t.Errorf("camera should centre on actor, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}

	a.SetPosition(0, 0)
	a.AlignCamera(cam)
	if cam.Position.X != 400 || cam.Position.Y != 300 {
		t.Errorf("camera should clamp to world, got (%v, %v)", cam.Position.X, cam.Position.Y)
	}

	a.MoveBy(5, 6)
	if x, y, w, h := a.Box(); x != 5 || y != 6 || w != 20 || h != 40 {
		t.Errorf("Box() = (%v, %v, %v, %v)", x, y, w, h)
	}
}
