package assets

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "golang.org/x/image/bmp"
)

// imageCache keeps every successfully decoded image for the lifetime of the
// process. Callers hold the returned handles but never own them.
var imageCache = map[string]*ebiten.Image{}

// Image loads an image from disk, caching by path.
func Image(path string) (*ebiten.Image, error) {
	if img, ok := imageCache[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}

	imageCache[path] = img
	return img, nil
}

// background is the shared backdrop drawn behind the menu, the pickers and
// the game screen. Nil until the first successful load; renderers fall back
// to a flat fill.
var background *ebiten.Image

// Background returns the current shared backdrop, which may be nil.
func Background() *ebiten.Image {
	return background
}

// SetBackground swaps the shared backdrop. On load failure the previous
// image stays installed and the error is returned for the caller to report.
func SetBackground(path string) error {
	img, err := Image(path)
	if err != nil {
		return err
	}
	background = img
	return nil
}
