// Package tilemap draws a Tiled map behind a stage's actors. The layer owns a
// second camera that tracks the main one, so the map always lines up with
// the sprites drawn around it.
package tilemap

import (
	"io/fs"

	"github.com/automoto/tilestage/assets"
	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/faults"
	"github.com/automoto/tilestage/logging"
	"github.com/automoto/tilestage/render"
	"github.com/automoto/tilestage/world"
	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

// Host is the stage a layer registers with.
type Host interface {
	AddTileLayer(e components.Entity, mapName string)
	WorldBounds() *world.Bounds
	Camera() *camera.Camera
	Logger() *zap.Logger
}

type Layer struct {
	path     string
	tiles    *tiled.Map
	renderer *Renderer
	camera   *camera.Camera
	main     *camera.Camera
}

// New loads the TMX file at path from fsys, sizes the host's world bounds to
// the map and registers the layer with host. On error nothing is registered
// and the bounds are left as they were.
func New(fsys fs.FS, path string, host Host) (*Layer, error) {
	logger := logging.OrNop(host.Logger())

	tiles, err := assets.LoadTileMap(fsys, path)
	if err != nil {
		return nil, err
	}
	if w, h := world.MapSize(tiles); w <= 0 || h <= 0 {
		return nil, faults.ResourceLoad(path, faults.Precondition("map size must be positive, got %dx%d", w, h))
	}

	renderer, err := NewRenderer(tiles, fsys, config.Tiles.RenderPropertyOnly, logger)
	if err != nil {
		return nil, err
	}

	if err := host.WorldBounds().SetFromMap(tiles); err != nil {
		return nil, err
	}

	l := &Layer{
		path:     path,
		tiles:    tiles,
		renderer: renderer,
		camera:   camera.New(float64(config.Tiles.WindowWidth), float64(config.Tiles.WindowHeight)),
		main:     host.Camera(),
	}

	w, h := world.MapSize(tiles)
	logger.Info("tile map loaded",
		zap.String("map", path),
		zap.Int("tilesX", tiles.Width),
		zap.Int("tilesY", tiles.Height),
		zap.Int("tileWidth", tiles.TileWidth),
		zap.Int("tileHeight", tiles.TileHeight),
		zap.Int("width", w),
		zap.Int("height", h),
	)

	host.AddTileLayer(l, path)
	return l, nil
}

// Act does nothing; the layer only follows the main camera when drawn.
func (l *Layer) Act(dt float64) error { return nil }

// Draw interrupts the batch to render the map underneath anything drawn
// after it, then resumes the batch.
func (l *Layer) Draw(batch render.Batch) {
	l.sync()

	batch.End()
	l.renderer.SetView(l.camera)
	l.renderer.Render(batch.Target())
	batch.Begin()
}

// sync copies the main camera's view, viewport included. The configured
// tile window only applies when there is no main camera.
func (l *Layer) sync() {
	if l.main != nil {
		l.camera.Position.X = l.main.Position.X
		l.camera.Position.Y = l.main.Position.Y
		l.camera.Zoom = l.main.Zoom
		l.camera.ViewportWidth = l.main.ViewportWidth
		l.camera.ViewportHeight = l.main.ViewportHeight
	}
	l.camera.Update()
}

func (l *Layer) Path() string { return l.path }

func (l *Layer) Map() *tiled.Map { return l.tiles }

// Camera is the layer's own camera, not the stage's.
func (l *Layer) Camera() *camera.Camera { return l.camera }

func (l *Layer) Renderer() *Renderer { return l.renderer }
