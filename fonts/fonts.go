package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	UI    FontName = "ui"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var fonts = map[FontName]font.Face{}

// Load parses the bundled typeface and registers the faces every screen
// draws with. Must be called once before any Get.
func Load() error {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse typeface: %w", err)
	}

	sizes := map[FontName]float64{
		UI:    24,
		Title: 48,
		Small: 14,
	}
	for name, size := range sizes {
		fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
