package render

import (
	gomath "math"
	"testing"

	"github.com/automoto/tilestage/camera"
	"github.com/hajimehoshi/ebiten/v2"
)

func near(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-9
}

func TestTransform(t *testing.T) {
	frame := ebiten.NewImage(10, 20)

	tests := []struct {
		name                   string
		x, y, ox, oy, w, h     float64
		sx, sy, rot            float64
		inX, inY, wantX, wantY float64
	}{
		{name: "identity placement", x: 5, y: 7, w: 10, h: 20, sx: 1, sy: 1, inX: 0, inY: 0, wantX: 5, wantY: 7},
		{name: "stretch to size", w: 20, h: 40, sx: 1, sy: 1, inX: 10, inY: 20, wantX: 20, wantY: 40},
		{name: "scale about origin", x: 100, y: 100, ox: 5, oy: 10, w: 10, h: 20, sx: 2, sy: 2, inX: 5, inY: 10, wantX: 105, wantY: 110},
		{name: "rotate 90 about origin", ox: 5, oy: 10, w: 10, h: 20, sx: 1, sy: 1, rot: 90, inX: 10, inY: 10, wantX: 5, wantY: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Transform(frame, tt.x, tt.y, tt.ox, tt.oy, tt.w, tt.h, tt.sx, tt.sy, tt.rot)
			gx, gy := m.Apply(tt.inX, tt.inY)
			if !near(gx, tt.wantX) || !near(gy, tt.wantY) {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.inX, tt.inY, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSpriteBatch_BeginEnd(t *testing.T) {
	b := NewSpriteBatch(camera.New(64, 64))
	b.SetTarget(ebiten.NewImage(64, 64))

	b.Begin()
	if !b.Drawing() {
		t.Fatal("expected drawing after Begin")
	}
	b.Draw(ebiten.NewImage(4, 4), 1, 2, 0, 0, 4, 4, 1, 1, 0)
	b.End()
	if b.Drawing() {
		t.Fatal("expected not drawing after End")
	}

	s := b.Stats()
	if s.Draws != 1 || s.Begins != 1 || s.Flushes != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	b.ResetStats()
	if b.Stats() != (Stats{}) {
		t.Error("ResetStats() should clear counters")
	}
}

func TestSpriteBatch_Misuse(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *SpriteBatch)
	}{
		{name: "double begin", fn: func(b *SpriteBatch) { b.Begin(); b.Begin() }},
		{name: "end without begin", fn: func(b *SpriteBatch) { b.End() }},
		{name: "draw outside batch", fn: func(b *SpriteBatch) {
			b.Draw(ebiten.NewImage(1, 1), 0, 0, 0, 0, 1, 1, 1, 1, 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			b := NewSpriteBatch(nil)
			b.SetTarget(ebiten.NewImage(8, 8))
			tt.fn(b)
		})
	}
}

func TestSpriteBatch_ImplementsInterfaces(t *testing.T) {
	var _ Batch = (*SpriteBatch)(nil)
	var _ Tinter = (*SpriteBatch)(nil)
}
