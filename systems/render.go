package systems

import (
	"image"

	"github.com/campusgames/cityhop/assets"
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackdrop fills the screen with the shared background image, or a flat
// color while no background has loaded.
func DrawBackdrop(screen *ebiten.Image) {
	bg := assets.Background()
	if bg == nil {
		screen.Fill(cfg.Menu.BackgroundColor)
		return
	}

	op := &ebiten.DrawImageOptions{}
	w, h := bg.Bounds().Dx(), bg.Bounds().Dy()
	op.GeoM.Scale(
		float64(cfg.C.Width)/float64(w),
		float64(cfg.C.Height)/float64(h),
	)
	screen.DrawImage(bg, op)
}

// DrawLevel renders the backdrop and the static platform set.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	DrawBackdrop(screen)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, p := range level.Platforms {
		vector.FillRect(
			screen,
			float32(p.X), float32(p.Y),
			float32(p.W), float32(p.H),
			cfg.Menu.PlatformColor,
			false,
		)
	}
}

// DrawPlayer renders the player with the selected skin, falling back to a
// flat rectangle while the skin image is unavailable.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		obj := components.Object.Get(entry)

		skin, err := assets.Image(cfg.Catalog.SkinPath(player.SkinID))
		if err != nil {
			vector.FillRect(
				screen,
				float32(obj.X), float32(obj.Y),
				float32(obj.W), float32(obj.H),
				cfg.Menu.PlayerColor,
				false,
			)
			return
		}

		op := &ebiten.DrawImageOptions{}
		w, h := skin.Bounds().Dx(), skin.Bounds().Dy()
		op.GeoM.Scale(obj.W/float64(w), obj.H/float64(h))
		op.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(skin, op)
	})
}

// drawImageInRect draws the image at path scaled into rect, or a flat fill
// when the image cannot be loaded.
func drawImageInRect(screen *ebiten.Image, path string, rect image.Rectangle) {
	img, err := assets.Image(path)
	if err != nil {
		vector.FillRect(
			screen,
			float32(rect.Min.X), float32(rect.Min.Y),
			float32(rect.Dx()), float32(rect.Dy()),
			cfg.Menu.ButtonColor,
			false,
		)
		return
	}

	op := &ebiten.DrawImageOptions{}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Scale(float64(rect.Dx())/float64(w), float64(rect.Dy())/float64(h))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(img, op)
}
