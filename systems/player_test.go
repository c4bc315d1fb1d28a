package systems

import (
	"testing"

	cfg "github.com/campusgames/cityhop/config"
)

func TestPlayerIntentFromHeldKeys(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, float64(cfg.Level.GroundLevel))
	physics, _ := spawnPlayerAt(e, 300, 100)

	pressAction(e, cfg.ActionMoveRight)
	UpdatePlayer(e)
	if physics.IntentX != 1 {
		t.Errorf("IntentX = %v, want 1", physics.IntentX)
	}

	pressAction(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)
	if physics.IntentX != 0 {
		t.Errorf("IntentX with both keys held = %v, want 0", physics.IntentX)
	}
}

func TestPlayerJumpHeldTracksKey(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, float64(cfg.Level.GroundLevel))
	physics, _ := spawnPlayerAt(e, 300, 100)

	pressAction(e, cfg.ActionJump)
	UpdatePlayer(e)
	if !physics.JumpHeld {
		t.Error("JumpHeld = false while the jump key is held")
	}

	input := getOrCreateInput(e)
	input.Current[cfg.ActionJump] = false
	UpdatePlayer(e)
	if physics.JumpHeld {
		t.Error("JumpHeld = true after the jump key was released")
	}
}

func TestEscapeLeavesForTheMenu(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateEscape(sc, func() interface{} { return "menu scene" })

	update(e)
	if sc.changed != nil {
		t.Fatalf("changed scene without input = %v, want nil", sc.changed)
	}

	pressAction(e, cfg.ActionBack)
	update(e)
	if sc.changed != "menu scene" {
		t.Errorf("changed scene = %v, want the menu", sc.changed)
	}
}

func TestEscapeNeedsAFreshPress(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateEscape(sc, func() interface{} { return "menu scene" })

	// Key held since the previous frame: no transition.
	input := pressAction(e, cfg.ActionBack)
	input.Previous[cfg.ActionBack] = true

	update(e)
	if sc.changed != nil {
		t.Errorf("changed scene on a held key = %v, want nil", sc.changed)
	}
}
