// Package world holds the rectangular play area that actors are clamped into.
package world

import (
	"fmt"

	"github.com/automoto/tilestage/faults"
	"github.com/lafriks/go-tiled"
)

var ErrBoundsUninitialized = faults.Precondition("world bounds not initialized")

// Bounds is the play area, anchored at (0,0). One value is shared by
// reference between every bounded actor of a stage; it starts unset and must
// be initialized before the first clamp.
type Bounds struct {
	width, height float64
	initialized   bool
}

// New returns bounds already initialized to width x height.
func New(width, height float64) (*Bounds, error) {
	b := &Bounds{}
	if err := b.Set(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

// Set initializes or resizes the bounds.
func (b *Bounds) Set(width, height float64) error {
	if width <= 0 || height <= 0 {
		return faults.Precondition("world bounds must be positive, got %.1fx%.1f", width, height)
	}
	b.width, b.height = width, height
	b.initialized = true
	return nil
}

// Resize is Set under the name callers use once gameplay has started.
func (b *Bounds) Resize(width, height float64) error {
	return b.Set(width, height)
}

// SetFromMap measures a tile map in pixels and uses that as the play area.
func (b *Bounds) SetFromMap(m *tiled.Map) error {
	if m == nil {
		return fmt.Errorf("%w: nil tile map", ErrBoundsUninitialized)
	}
	w, h := MapSize(m)
	return b.Set(float64(w), float64(h))
}

// MapSize returns the pixel dimensions of a tile map.
func MapSize(m *tiled.Map) (width, height int) {
	return m.Width * m.TileWidth, m.Height * m.TileHeight
}

func (b *Bounds) Initialized() bool { return b != nil && b.initialized }

// Size returns the play area, or ErrBoundsUninitialized.
func (b *Bounds) Size() (width, height float64, err error) {
	if !b.Initialized() {
		return 0, 0, ErrBoundsUninitialized
	}
	return b.width, b.height, nil
}

// Clamp returns the top-left position that keeps a w x h box starting at
// (x, y) inside the bounds. A box larger than the bounds is pinned to the
// origin on that axis.
func (b *Bounds) Clamp(x, y, w, h float64) (float64, float64, error) {
	if !b.Initialized() {
		return x, y, ErrBoundsUninitialized
	}
	return clampAxis(x, w, b.width), clampAxis(y, h, b.height), nil
}

func clampAxis(pos, size, limit float64) float64 {
	if pos+size > limit {
		pos = limit - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
