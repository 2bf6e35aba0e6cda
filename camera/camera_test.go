package camera

import (
	gomath "math"
	"testing"

	"github.com/automoto/tilestage/world"
	"github.com/yohamta/donburi/features/math"
)

func TestSetToOrtho(t *testing.T) {
	c := New(800, 600)

	if c.Position.X != 400 || c.Position.Y != 300 {
		t.Errorf("expected centre (400, 300), got (%v, %v)", c.Position.X, c.Position.Y)
	}
	x, y := c.WorldToScreen(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("world origin should map to screen origin, got (%v, %v)", x, y)
	}
	x, y = c.WorldToScreen(800, 600)
	if x != 800 || y != 600 {
		t.Errorf("world (800, 600) should map to (800, 600), got (%v, %v)", x, y)
	}
}

func TestUpdate_TranslatesAndZooms(t *testing.T) {
	c := New(800, 600)
	c.Position = math.Vec2{X: 1000, Y: 500}
	c.Zoom = 2
	c.Update()

	x, y := c.WorldToScreen(1000, 500)
	if x != 400 || y != 300 {
		t.Errorf("camera position should be the screen centre, got (%v, %v)", x, y)
	}
	x, y = c.WorldToScreen(1010, 500)
	if x != 420 || y != 300 {
		t.Errorf("expected 2x zoom offset (420, 300), got (%v, %v)", x, y)
	}

	vx, vy, vw, vh := c.VisibleRect()
	if vx != 800 || vy != 350 || vw != 400 || vh != 300 {
		t.Errorf("VisibleRect() = (%v, %v, %v, %v)", vx, vy, vw, vh)
	}
}

func TestClampTo(t *testing.T) {
	b, err := world.New(2000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		pos          math.Vec2
		wantX, wantY float64
	}{
		{name: "inside", pos: math.Vec2{X: 1000, Y: 500}, wantX: 1000, wantY: 500},
		{name: "left top", pos: math.Vec2{X: 10, Y: -50}, wantX: 400, wantY: 300},
		{name: "right bottom", pos: math.Vec2{X: 1990, Y: 990}, wantX: 1600, wantY: 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(800, 600)
			c.Position = tt.pos
			c.ClampTo(b)
			if c.Position.X != tt.wantX || c.Position.Y != tt.wantY {
				t.Errorf("ClampTo() = (%v, %v), want (%v, %v)", c.Position.X, c.Position.Y, tt.wantX, tt.wantY)
			}
		})
	}

	small, _ := world.New(400, 300)
	c := New(800, 600)
	c.ClampTo(small)
	if c.Position.X != 200 || c.Position.Y != 150 {
		t.Errorf("small world should be centred, got (%v, %v)", c.Position.X, c.Position.Y)
	}

	c = New(800, 600)
	c.Position = math.Vec2{X: -100, Y: -100}
	c.ClampTo(&world.Bounds{})
	if c.Position.X != -100 {
		t.Error("uninitialized bounds must leave the camera alone")
	}
}

func TestFollow(t *testing.T) {
	c := New(800, 600)
	c.Follow(math.Vec2{X: 500, Y: 400}, 0.5)
	if c.Position.X != 450 || c.Position.Y != 350 {
		t.Errorf("Follow() = (%v, %v), want (450, 350)", c.Position.X, c.Position.Y)
	}
}

func TestPanTo(t *testing.T) {
	c := New(800, 600)
	c.PanTo(1000, 700, 1)
	if !c.Panning() {
		t.Fatal("expected pan in progress")
	}

	c.Act(0.5)
	if !c.Panning() {
		t.Fatal("pan finished too early")
	}
	if c.Position.X <= 400 || c.Position.X >= 1000 {
		t.Errorf("expected mid-pan x between 400 and 1000, got %v", c.Position.X)
	}

	c.Act(0.6)
	if c.Panning() {
		t.Error("expected pan to finish")
	}
	if gomath.Abs(c.Position.X-1000) > 1e-3 || gomath.Abs(c.Position.Y-700) > 1e-3 {
		t.Errorf("expected final position (1000, 700), got (%v, %v)", c.Position.X, c.Position.Y)
	}

	c.PanTo(5, 6, 0)
	if c.Panning() || c.Position.X != 5 || c.Position.Y != 6 {
		t.Error("zero-length pan should jump immediately")
	}
}
