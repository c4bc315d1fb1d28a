package systems

import (
	"testing"

	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/yohamta/donburi/ecs"
)

func pickerCarousel(t *testing.T, e *ecs.ECS) *components.CarouselData {
	t.Helper()
	entry, ok := components.Carousel.First(e.World)
	if !ok {
		t.Fatal("no carousel in the picker world")
	}
	return components.Carousel.Get(entry)
}

func TestMapPickerSeedsFromProfile(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateMapPicker(sc, func() interface{} { return "menu scene" })

	setCursor(e, 0, 0, false)
	update(e)

	carousel := pickerCarousel(t, e)
	if got, want := carousel.Selected(), ActiveProfile().MapID; got != want {
		t.Errorf("seeded selection = %q, want the profile's %q", got, want)
	}
}

func TestPickerArrowsMoveTheSelection(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateMapPicker(sc, func() interface{} { return "menu scene" })

	setCursor(e, 0, 0, false)
	update(e)
	carousel := pickerCarousel(t, e)
	start := carousel.Index
	n := len(carousel.Items)

	clickRect(e, cfg.Menu.RightArrowButton)
	update(e)
	if want := (start + 1) % n; carousel.Index != want {
		t.Errorf("index after > = %d, want %d", carousel.Index, want)
	}

	clickRect(e, cfg.Menu.LeftArrowButton)
	update(e)
	if carousel.Index != start {
		t.Errorf("index after < = %d, want %d", carousel.Index, start)
	}
}

func TestPickerBackButtonReturnsToMenu(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateSkinPicker(sc, func() interface{} { return "menu scene" })

	clickRect(e, cfg.Menu.BackButton)
	update(e)

	if sc.changed != "menu scene" {
		t.Errorf("changed scene = %v, want the menu", sc.changed)
	}
}

func TestPickerEscapeReturnsToMenu(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateMapPicker(sc, func() interface{} { return "menu scene" })

	pressAction(e, cfg.ActionBack)
	update(e)

	if sc.changed != "menu scene" {
		t.Errorf("changed scene = %v, want the menu", sc.changed)
	}
}

func TestFailedMapSelectionKeepsProfile(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateMapPicker(sc, func() interface{} { return "menu scene" })

	before := ActiveProfile().MapID

	// Move off the saved map, then select. The map image does not exist
	// here, so the selection must not be installed.
	clickRect(e, cfg.Menu.RightArrowButton)
	update(e)
	clickRect(e, cfg.Menu.SelectButton)
	update(e)

	if got := ActiveProfile().MapID; got != before {
		t.Errorf("profile map after a failed selection = %q, want %q", got, before)
	}
}
