package systems

import (
	"os"

	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/fonts"
	"github.com/campusgames/cityhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateMenu returns the main menu button set, creating it on first use.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}

	entry := e.World.Entry(e.Create(cfg.Default, components.Menu))
	components.Menu.SetValue(entry, components.MenuData{
		Play:     ui.NewButton(cfg.Menu.PlayButton, "PLAY"),
		Skins:    ui.NewButton(cfg.Menu.SkinsButton, "SKINS"),
		Maps:     ui.NewButton(cfg.Menu.MapButton, "MAP"),
		Settings: ui.NewButton(cfg.Menu.SettingsButton, "SETTINGS"),
		Exit:     ui.NewButton(cfg.Menu.ExitButton, "EXIT"),
	})
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates the main menu system. Clicks outside every button
// are no-ops; the scene only changes through the buttons below.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene, createMapScene, createSkinScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// The overlay swallows all menu input while open
		if IsSettingsOpen() {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		for _, b := range menu.All() {
			b.SetHovered(b.Contains(input.CursorX, input.CursorY))
		}

		if !input.Clicked() {
			return
		}

		x, y := input.CursorX, input.CursorY
		switch {
		case menu.Play.Contains(x, y):
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createGameScene())
		case menu.Skins.Contains(x, y):
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createSkinScene())
		case menu.Maps.Contains(x, y):
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createMapScene())
		case menu.Settings.Contains(x, y):
			PlaySFX(e, cfg.SoundMenuSelect)
			OpenSettings()
		case menu.Exit.Contains(x, y):
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	DrawBackdrop(screen)

	menu := GetOrCreateMenu(e)

	titleFont := fonts.Title.Get()
	bounds := text.BoundString(titleFont, cfg.Menu.Title)
	x := (cfg.C.Width-bounds.Dx())/2 - bounds.Min.X
	text.Draw(screen, cfg.Menu.Title, titleFont, x, 100, cfg.Menu.ButtonTextColor)

	for _, b := range menu.All() {
		b.Draw(screen)
	}
}
