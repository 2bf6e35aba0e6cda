package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Loaded reports whether a face has been registered under f.
func (f FontName) Loaded() bool {
	_, ok := fonts[f]
	return ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefault registers the Go regular face as HUD at size, once.
func LoadDefault(size float64) error {
	if HUD.Loaded() {
		return nil
	}
	return LoadFontWithSize(HUD, goregular.TTF, size)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
