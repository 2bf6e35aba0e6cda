// Package render defines the draw batch that actors submit frames to, and
// its Ebitengine implementation.
package render

import (
	gomath "math"

	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/faults"
	"github.com/hajimehoshi/ebiten/v2"
)

// Batch accumulates draw calls between Begin and End.
type Batch interface {
	Begin()
	End()
	Drawing() bool
	// Target is the image the batch draws onto. Passes that bypass the
	// batch, like tile rendering, draw onto it between End and Begin.
	Target() *ebiten.Image
	// Draw renders frame with its top left corner at (x, y), stretched to
	// width x height, then scaled and rotated (degrees) about
	// (x+originX, y+originY).
	Draw(frame *ebiten.Image, x, y, originX, originY, width, height, scaleX, scaleY, rotation float64)
}

// Tinter is implemented by batches that can tint subsequent draws.
type Tinter interface {
	SetColor(r, g, b, a float32)
}

// Stats counts batch activity since the last ResetStats.
type Stats struct {
	Draws   int
	Begins  int
	Flushes int
}

// SpriteBatch draws through a camera onto an *ebiten.Image.
type SpriteBatch struct {
	target  *ebiten.Image
	camera  *camera.Camera
	drawing bool
	color   [4]float32
	op      ebiten.DrawImageOptions
	stats   Stats
}

func NewSpriteBatch(cam *camera.Camera) *SpriteBatch {
	return &SpriteBatch{
		camera: cam,
		color:  [4]float32{1, 1, 1, 1},
	}
}

// SetTarget selects the image drawn onto; usually the screen passed to Draw.
func (b *SpriteBatch) SetTarget(target *ebiten.Image) { b.target = target }

func (b *SpriteBatch) Target() *ebiten.Image { return b.target }

// SetCamera replaces the projection used for subsequent draws.
func (b *SpriteBatch) SetCamera(cam *camera.Camera) { b.camera = cam }

func (b *SpriteBatch) Camera() *camera.Camera { return b.camera }

func (b *SpriteBatch) Drawing() bool { return b.drawing }

// Begin starts a batch. Calling it twice without End is a caller bug.
func (b *SpriteBatch) Begin() {
	if b.drawing {
		panic(faults.Precondition("SpriteBatch.End must be called before Begin"))
	}
	b.drawing = true
	b.stats.Begins++
}

// End finishes the batch.
func (b *SpriteBatch) End() {
	if !b.drawing {
		panic(faults.Precondition("SpriteBatch.Begin must be called before End"))
	}
	b.drawing = false
	b.stats.Flushes++
}

// SetColor tints every following draw until changed.
func (b *SpriteBatch) SetColor(r, g, bl, a float32) {
	b.color = [4]float32{r, g, bl, a}
}

func (b *SpriteBatch) Stats() Stats { return b.stats }

func (b *SpriteBatch) ResetStats() { b.stats = Stats{} }

func (b *SpriteBatch) Draw(frame *ebiten.Image, x, y, originX, originY, width, height, scaleX, scaleY, rotation float64) {
	if !b.drawing {
		panic(faults.Precondition("SpriteBatch.Begin must be called before Draw"))
	}
	if frame == nil || b.target == nil {
		return
	}

	b.op.GeoM = Transform(frame, x, y, originX, originY, width, height, scaleX, scaleY, rotation)
	if b.camera != nil {
		b.op.GeoM.Concat(b.camera.View())
	}
	b.op.ColorScale.Reset()
	b.op.ColorScale.Scale(b.color[0], b.color[1], b.color[2], b.color[3])

	b.target.DrawImage(frame, &b.op)
	b.stats.Draws++
}

// Transform returns the world matrix Draw applies to frame before the
// camera view.
func Transform(frame *ebiten.Image, x, y, originX, originY, width, height, scaleX, scaleY, rotation float64) ebiten.GeoM {
	var m ebiten.GeoM
	fb := frame.Bounds()
	if fw, fh := float64(fb.Dx()), float64(fb.Dy()); fw > 0 && fh > 0 {
		m.Scale(width/fw, height/fh)
	}
	m.Translate(-originX, -originY)
	m.Scale(scaleX, scaleY)
	m.Rotate(rotation * gomath.Pi / 180)
	m.Translate(x+originX, y+originY)
	return m
}
