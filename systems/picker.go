package systems

import (
	"github.com/campusgames/cityhop/assets"
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreatePicker returns the shared arrow/select/back button set for the
// map and skin screens, creating it on first use.
func GetOrCreatePicker(e *ecs.ECS) *components.PickerData {
	if entry, ok := components.Picker.First(e.World); ok {
		return components.Picker.Get(entry)
	}

	entry := e.World.Entry(e.Create(cfg.Default, components.Picker))
	components.Picker.SetValue(entry, components.PickerData{
		Left:   ui.NewButton(cfg.Menu.LeftArrowButton, "<"),
		Right:  ui.NewButton(cfg.Menu.RightArrowButton, ">"),
		Select: ui.NewButton(cfg.Menu.SelectButton, "SELECT"),
		Back:   ui.NewButton(cfg.Menu.BackButton, "BACK"),
	})
	return components.Picker.Get(entry)
}

// getOrCreateCarousel returns this scene's carousel, seeding it with the
// given items and starting index on first use.
func getOrCreateCarousel(e *ecs.ECS, items []string, index int) *components.CarouselData {
	if entry, ok := components.Carousel.First(e.World); ok {
		return components.Carousel.Get(entry)
	}

	entry := e.World.Entry(e.Create(cfg.Default, components.Carousel))
	components.Carousel.SetValue(entry, components.CarouselData{
		Items: items,
		Index: index,
	})
	return components.Carousel.Get(entry)
}

// NewUpdateMapPicker creates the map screen system. SELECT swaps the shared
// background; a failed load keeps the previous background in place.
func NewUpdateMapPicker(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		picker := GetOrCreatePicker(e)
		carousel := getOrCreateCarousel(e,
			cfg.Catalog.MapIDs(),
			cfg.Catalog.MapIndex(ActiveProfile().MapID),
		)

		handlePicker(e, sceneChanger, createMenuScene, picker, carousel, applyMapSelection)
	}
}

// NewUpdateSkinPicker creates the skin screen system. SELECT reassigns the
// player's appearance for subsequent runs.
func NewUpdateSkinPicker(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		picker := GetOrCreatePicker(e)
		carousel := getOrCreateCarousel(e,
			cfg.Catalog.SkinIDs(),
			cfg.Catalog.SkinIndex(ActiveProfile().SkinID),
		)

		handlePicker(e, sceneChanger, createMenuScene, picker, carousel, applySkinSelection)
	}
}

func handlePicker(
	e *ecs.ECS,
	sceneChanger SceneChanger,
	createMenuScene func() interface{},
	picker *components.PickerData,
	carousel *components.CarouselData,
	applySelection func(e *ecs.ECS, id string),
) {
	input := getOrCreateInput(e)

	for _, b := range picker.All() {
		b.SetHovered(b.Contains(input.CursorX, input.CursorY))
	}

	if GetAction(input, cfg.ActionBack).JustPressed {
		sceneChanger.ChangeScene(createMenuScene())
		return
	}

	if !input.Clicked() {
		return
	}

	x, y := input.CursorX, input.CursorY
	switch {
	case picker.Left.Contains(x, y):
		PlaySFX(e, cfg.SoundMenuNavigate)
		carousel.Navigate(components.DirLeft)
	case picker.Right.Contains(x, y):
		PlaySFX(e, cfg.SoundMenuNavigate)
		carousel.Navigate(components.DirRight)
	case picker.Select.Contains(x, y):
		PlaySFX(e, cfg.SoundMenuSelect)
		applySelection(e, carousel.Selected())
	case picker.Back.Contains(x, y):
		PlaySFX(e, cfg.SoundMenuSelect)
		sceneChanger.ChangeScene(createMenuScene())
	}
}

// applyMapSelection installs the chosen map as the shared background for the
// menu, the map screen and the game screen alike.
func applyMapSelection(e *ecs.ECS, id string) {
	path := cfg.Catalog.MapPath(id)
	if err := assets.SetBackground(path); err != nil {
		log.Warn("keeping previous background", "map", id, "err", err)
		return
	}

	profile := ActiveProfile()
	profile.MapID = id
	SaveProfile()
}

// applySkinSelection reassigns the player's appearance identifier. The skin
// image is verified up front so a broken asset never gets installed.
func applySkinSelection(e *ecs.ECS, id string) {
	path := cfg.Catalog.SkinPath(id)
	if _, err := assets.Image(path); err != nil {
		log.Warn("keeping previous skin", "skin", id, "err", err)
		return
	}

	profile := ActiveProfile()
	profile.SkinID = id
	SaveProfile()
}

// DrawMapPicker renders the map screen with the selection thumbnail.
func DrawMapPicker(e *ecs.ECS, screen *ebiten.Image) {
	drawPicker(e, screen, cfg.Catalog.MapPath)
}

// DrawSkinPicker renders the skin screen with the selection thumbnail.
func DrawSkinPicker(e *ecs.ECS, screen *ebiten.Image) {
	drawPicker(e, screen, cfg.Catalog.SkinPath)
}

func drawPicker(e *ecs.ECS, screen *ebiten.Image, pathFor func(string) string) {
	DrawBackdrop(screen)

	if entry, ok := components.Carousel.First(e.World); ok {
		carousel := components.Carousel.Get(entry)
		drawImageInRect(screen, pathFor(carousel.Selected()), cfg.Menu.ThumbnailRect)
	}

	picker := GetOrCreatePicker(e)
	for _, b := range picker.All() {
		b.Draw(screen)
	}
}
