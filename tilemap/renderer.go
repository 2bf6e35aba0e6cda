package tilemap

import (
	"io/fs"

	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/faults"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"go.uber.org/zap"
)

// Renderer rasterizes a tile map once and then draws the cached image through
// whichever camera was last passed to SetView.
type Renderer struct {
	image *ebiten.Image
	op    ebiten.DrawImageOptions
	view  ebiten.GeoM
}

// NewRenderer draws every visible tile layer of m. With propertyOnly set,
// only layers carrying a true "render" custom property are drawn.
func NewRenderer(m *tiled.Map, fsys fs.FS, propertyOnly bool, logger *zap.Logger) (*Renderer, error) {
	renderer, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		return nil, faults.ResourceLoad("tileset", err)
	}

	width, height := m.Width*m.TileWidth, m.Height*m.TileHeight
	background := ebiten.NewImage(width, height)
	op := &ebiten.DrawImageOptions{}

	for i, layer := range m.Layers {
		if !layer.Visible {
			continue
		}
		if propertyOnly && !layer.Properties.GetBool("render") {
			continue
		}
		// Skip fully transparent layers
		if layer.Opacity <= 0 {
			continue
		}

		renderer.Clear()
		if err := renderer.RenderLayer(i); err != nil {
			logger.Warn("failed to render tile layer",
				zap.Int("index", i),
				zap.String("name", layer.Name),
				zap.Error(err),
			)
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
	}

	return &Renderer{image: background}, nil
}

// SetView projects later Render calls through cam.
func (r *Renderer) SetView(cam *camera.Camera) {
	r.view = cam.View()
}

func (r *Renderer) Render(target *ebiten.Image) {
	if target == nil {
		return
	}
	r.op.GeoM = r.view
	target.DrawImage(r.image, &r.op)
}

// Image is the cached map raster.
func (r *Renderer) Image() *ebiten.Image { return r.image }
