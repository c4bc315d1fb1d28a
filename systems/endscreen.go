package systems

import (
	"image"
	"image/color"

	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/fonts"
	"github.com/campusgames/cityhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateEndScreen returns the single-button widget set of a win or
// lose screen, creating it on first use.
func GetOrCreateEndScreen(e *ecs.ECS, rect image.Rectangle, label string) *components.EndScreenData {
	if entry, ok := components.EndScreen.First(e.World); ok {
		return components.EndScreen.Get(entry)
	}

	entry := e.World.Entry(e.Create(cfg.Default, components.EndScreen))
	components.EndScreen.SetValue(entry, components.EndScreenData{
		Button: ui.NewButton(rect, label),
	})
	return components.EndScreen.Get(entry)
}

// NewUpdateEndScreen creates the system behind a win or lose screen: the
// single button transitions to the scene built by createNext.
func NewUpdateEndScreen(sceneChanger SceneChanger, rect image.Rectangle, label string, createNext func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		end := GetOrCreateEndScreen(e, rect, label)
		input := getOrCreateInput(e)

		end.Button.SetHovered(end.Button.Contains(input.CursorX, input.CursorY))

		if input.Clicked() && end.Button.Contains(input.CursorX, input.CursorY) {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createNext())
		}
	}
}

// UpdateBanner advances the headline fade-in.
func UpdateBanner(e *ecs.ECS) {
	if entry, ok := components.Banner.First(e.World); ok {
		banner := components.Banner.Get(entry)
		alpha, _ := banner.Fade.Update(float32(1) / float32(cfg.C.TPS))
		banner.Alpha = alpha
	}
}

// DrawEndScreen renders the backdrop, the fading headline and the button.
func DrawEndScreen(e *ecs.ECS, screen *ebiten.Image) {
	DrawBackdrop(screen)

	if entry, ok := components.Banner.First(e.World); ok {
		banner := components.Banner.Get(entry)

		clr := cfg.Menu.BannerColor
		faded := color.RGBA{
			R: clr.R, G: clr.G, B: clr.B,
			A: uint8(float32(clr.A) * banner.Alpha),
		}

		titleFont := fonts.Title.Get()
		bounds := text.BoundString(titleFont, banner.Text)
		x := (cfg.C.Width-bounds.Dx())/2 - bounds.Min.X
		text.Draw(screen, banner.Text, titleFont, x, cfg.C.Height/2-100, faded)
	}

	if entry, ok := components.EndScreen.First(e.World); ok {
		components.EndScreen.Get(entry).Button.Draw(screen)
	}
}
