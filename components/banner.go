package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData drives the fade-in headline on the win and lose screens.
type BannerData struct {
	Text  string
	Fade  *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
