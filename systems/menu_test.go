package systems

import (
	"image"
	"testing"

	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/yohamta/donburi/ecs"
)

func clickRect(e *ecs.ECS, r image.Rectangle) {
	setCursor(e, (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2, true)
}

func newMenuUpdate(sc SceneChanger) ecs.System {
	return NewUpdateMenu(sc,
		func() interface{} { return "game scene" },
		func() interface{} { return "map scene" },
		func() interface{} { return "skin scene" },
	)
}

func TestMenuButtonsChangeScene(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
		want interface{}
	}{
		{"play", cfg.Menu.PlayButton, "game scene"},
		{"skins", cfg.Menu.SkinsButton, "skin scene"},
		{"map", cfg.Menu.MapButton, "map scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld()
			sc := &fakeSceneChanger{}
			update := newMenuUpdate(sc)

			clickRect(e, tt.rect)
			update(e)

			if sc.changed != tt.want {
				t.Errorf("changed scene = %v, want %v", sc.changed, tt.want)
			}
		})
	}
}

func TestMenuClickOutsideButtonsIsANoOp(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := newMenuUpdate(sc)

	setCursor(e, 1, 1, true)
	update(e)

	if sc.changed != nil {
		t.Errorf("changed scene = %v, want nil", sc.changed)
	}
}

func TestMenuHoverOnlyOnPointedButton(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := newMenuUpdate(sc)

	clickCenter := cfg.Menu.SkinsButton
	setCursor(e, (clickCenter.Min.X+clickCenter.Max.X)/2, (clickCenter.Min.Y+clickCenter.Max.Y)/2, false)
	update(e)

	menu := GetOrCreateMenu(e)
	if !menu.Skins.Hovered {
		t.Error("Skins not hovered under the cursor")
	}
	for _, b := range []struct {
		name    string
		hovered bool
	}{
		{"Play", menu.Play.Hovered},
		{"Maps", menu.Maps.Hovered},
		{"Settings", menu.Settings.Hovered},
		{"Exit", menu.Exit.Hovered},
	} {
		if b.hovered {
			t.Errorf("%s hovered away from the cursor", b.name)
		}
	}
}

func TestMenuClickQueuesSelectSound(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := newMenuUpdate(sc)

	clickRect(e, cfg.Menu.PlayButton)
	update(e)

	entry, ok := components.Audio.First(e.World)
	if !ok {
		t.Fatal("no audio queue after a button click")
	}
	pending := components.Audio.Get(entry).PendingSFX
	if len(pending) != 1 || pending[0] != cfg.SoundMenuSelect {
		t.Errorf("PendingSFX = %v, want [%v]", pending, cfg.SoundMenuSelect)
	}
}
