package ui

import (
	"image"

	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centered label and a hover
// highlight, drawn immediate-mode every frame.
type Button struct {
	Rect    image.Rectangle
	Label   string
	Hovered bool
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Label: label}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// SetHovered updates the hover highlight state.
func (b *Button) SetHovered(hovered bool) {
	b.Hovered = hovered
}

// Draw renders the button background and centered label.
func (b *Button) Draw(screen *ebiten.Image) {
	clr := cfg.Menu.ButtonColor
	if b.Hovered {
		clr = cfg.Menu.ButtonHoverColor
	}
	vector.FillRect(
		screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		clr,
		false,
	)

	face := fonts.UI.Get()
	bounds := text.BoundString(face, b.Label)
	x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	y := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Label, face, x, y, cfg.Menu.ButtonTextColor)
}
