package config

import (
	"image"
	"image/color"
)

// MenuConfig contains screen layout and palette configuration. Button
// rectangles are given in screen pixels; all screens share the same 800x600
// layout grid centered on the screen midpoint.
type MenuConfig struct {
	Title string

	// Main menu buttons
	PlayButton     image.Rectangle
	SkinsButton    image.Rectangle
	MapButton      image.Rectangle
	SettingsButton image.Rectangle
	ExitButton     image.Rectangle

	// Picker screens (map/skin share one layout)
	LeftArrowButton  image.Rectangle
	RightArrowButton image.Rectangle
	SelectButton     image.Rectangle
	BackButton       image.Rectangle
	ThumbnailRect    image.Rectangle

	// Win/lose screens
	WinBackButton  image.Rectangle
	TryAgainButton image.Rectangle

	// Palette
	ButtonColor      color.RGBA
	ButtonHoverColor color.RGBA
	ButtonTextColor  color.RGBA
	PlatformColor    color.RGBA
	PlayerColor      color.RGBA
	BackgroundColor  color.RGBA
	BannerColor      color.RGBA
}

// Menu is the global menu configuration
var Menu MenuConfig

func init() {
	cx := C.Width / 2
	cy := C.Height / 2

	btn := func(x, y, w, h int) image.Rectangle {
		return image.Rect(x, y, x+w, y+h)
	}

	Menu = MenuConfig{
		Title: "CITYHOP",

		PlayButton:     btn(cx-100, cy-150, 200, 50),
		SkinsButton:    btn(cx-225, cy-75, 200, 50),
		MapButton:      btn(cx+25, cy-75, 200, 50),
		SettingsButton: btn(cx-350, cy+200, 200, 50),
		ExitButton:     btn(cx+150, cy+200, 200, 50),

		LeftArrowButton:  btn(cx-250, cy, 50, 50),
		RightArrowButton: btn(cx+200, cy, 50, 50),
		SelectButton:     btn(cx-100, cy+125, 200, 50),
		BackButton:       btn(cx-100, cy+200, 200, 50),
		ThumbnailRect:    btn(cx-100, cy-100, 200, 200),

		WinBackButton:  btn(cx-100, cy+100, 200, 50),
		TryAgainButton: btn(cx-100, cy+100, 200, 50),

		ButtonColor:      color.RGBA{50, 50, 50, 255},
		ButtonHoverColor: color.RGBA{100, 50, 50, 255},
		ButtonTextColor:  color.RGBA{255, 255, 255, 255},
		PlatformColor:    color.RGBA{255, 229, 204, 255},
		PlayerColor:      color.RGBA{220, 80, 80, 255},
		BackgroundColor:  color.RGBA{24, 28, 38, 255},
		BannerColor:      color.RGBA{255, 255, 255, 255},
	}
}
