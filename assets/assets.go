package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/automoto/tilestage/animation"
	"github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/faults"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

// Files holds the demo levels and images.
//
//go:embed all:levels all:images
var Files embed.FS

// Loader reads textures from a file system and caches them by path.
type Loader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadTexture decodes the image at path, returning the cached copy on later
// calls.
func (l *Loader) LoadTexture(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, faults.ResourceLoad(path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, faults.ResourceLoad(path, err)
	}

	l.cache[path] = img
	return img, nil
}

func (l *Loader) MustLoadTexture(path string) *ebiten.Image {
	img, err := l.LoadTexture(path)
	if err != nil {
		panic(err)
	}
	return img
}

// LoadAnimationFromFiles builds a frame set with one image per file.
func (l *Loader) LoadAnimationFromFiles(paths []string, frameDuration float64, loop bool) (*animation.FrameSet, error) {
	if len(paths) == 0 {
		return nil, animation.ErrEmptyFrameSet
	}
	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := l.LoadTexture(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return animation.NewFrameSet(frameDuration, frames, playMode(loop))
}

// LoadAnimationFromSheet slices the sheet at path into rows x cols equal
// cells, read left to right then top to bottom.
func (l *Loader) LoadAnimationFromSheet(path string, rows, cols int, frameDuration float64, loop bool) (*animation.FrameSet, error) {
	if rows <= 0 || cols <= 0 {
		return nil, faults.Precondition("sheet %s: rows and cols must be positive, got %dx%d", path, rows, cols)
	}
	sheet, err := l.LoadTexture(path)
	if err != nil {
		return nil, err
	}

	size := sheet.Bounds().Size()
	frameW, frameH := size.X/cols, size.Y/rows
	if frameW == 0 || frameH == 0 {
		return nil, faults.Precondition("sheet %s: %dx%d is too small for %dx%d frames", path, size.X, size.Y, rows, cols)
	}

	frames := make([]*ebiten.Image, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sx, sy := c*frameW, r*frameH
			frame := sheet.SubImage(image.Rect(sx, sy, sx+frameW, sy+frameH)).(*ebiten.Image)
			frames = append(frames, frame)
		}
	}
	return animation.NewFrameSet(frameDuration, frames, playMode(loop))
}

// LoadAnimation builds the frame set described by def.
func (l *Loader) LoadAnimation(def config.AnimationDef, frameDuration float64) (*animation.FrameSet, error) {
	if def.Sheet != "" {
		return l.LoadAnimationFromSheet(def.Sheet, def.Rows, def.Cols, frameDuration, def.Loop)
	}
	return l.LoadAnimationFromFiles(def.Files, frameDuration, def.Loop)
}

func (l *Loader) MustLoadAnimation(key string, frameDuration float64) *animation.FrameSet {
	def, ok := config.Animations[key]
	if !ok {
		panic(fmt.Sprintf("animation %q not defined", key))
	}
	frames, err := l.LoadAnimation(def, frameDuration)
	if err != nil {
		panic(err)
	}
	return frames
}

// LoadTileMap parses the TMX file at path. Tilesets and images are resolved
// relative to it inside fsys.
func LoadTileMap(fsys fs.FS, path string) (*tiled.Map, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, faults.ResourceLoad(path, err)
	}
	return levelMap, nil
}

func playMode(loop bool) animation.PlayMode {
	if loop {
		return animation.Loop
	}
	return animation.Normal
}
