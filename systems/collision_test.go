package systems

import (
	"math"
	"testing"

	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/systems/factory"
)

func TestLandingFirstListedPlatformWins(t *testing.T) {
	e := newTestWorld()
	// Two overlapping platforms; the later one sits higher. The player's
	// bottom edge at 400 is inside both vertical bands.
	spawnLevel(e, 550,
		platformRect{100, 400, 150, 20},
		platformRect{100, 380, 150, 20},
	)
	factory.CreateFlow(e)
	physics, obj := spawnPlayerAt(e, 120, 350)

	UpdateCollisions(e)

	if !physics.OnGround {
		t.Fatal("player not grounded after landing")
	}
	if obj.Y != 350 {
		t.Errorf("Y after landing = %v, want 350 (top of the first listed platform)", obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY after landing = %v, want 0", physics.SpeedY)
	}
}

func TestLandingRequiresHorizontalOverlap(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, 550, platformRect{200, 400, 150, 20})
	factory.CreateFlow(e)
	physics, obj := spawnPlayerAt(e, 100, 350)

	UpdateCollisions(e)

	if physics.OnGround {
		t.Errorf("player grounded at x=%v without overlapping the platform", obj.X)
	}
}

func TestGroundLineLosesTheRun(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, 550)
	factory.CreateFlow(e)
	physics, obj := spawnPlayerAt(e, 300, 520)
	physics.SpeedY = 4

	UpdateCollisions(e)

	if got := flowOutcome(e); got != components.OutcomeLose {
		t.Fatalf("outcome = %v, want OutcomeLose", got)
	}
	if obj.Y != 500 {
		t.Errorf("Y after hitting the ground = %v, want 500", obj.Y)
	}
	if physics.SpeedY != 0 || !physics.OnGround {
		t.Errorf("SpeedY = %v, OnGround = %v, want 0 and true", physics.SpeedY, physics.OnGround)
	}
}

func TestPlatformOnGroundLineBeatsTheGround(t *testing.T) {
	e := newTestWorld()
	// Platform whose surface band ends exactly on the ground line.
	spawnLevel(e, 550, platformRect{0, 530, 150, 20})
	factory.CreateFlow(e)
	physics, obj := spawnPlayerAt(e, 50, 500)

	UpdateCollisions(e)

	if got := flowOutcome(e); got != components.OutcomeNone {
		t.Fatalf("outcome = %v, want OutcomeNone", got)
	}
	if !physics.OnGround {
		t.Fatal("player not grounded on the ground-line platform")
	}
	if obj.Y != 480 {
		t.Errorf("Y = %v, want 480 (standing on the platform, not the ground)", obj.Y)
	}
}

func TestRightEdgeWinsTheRun(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, 550)
	factory.CreateFlow(e)
	_, obj := spawnPlayerAt(e, float64(cfg.C.Width)-50, 100)

	UpdateCollisions(e)

	if got := flowOutcome(e); got != components.OutcomeWin {
		t.Errorf("outcome at x=%v = %v, want OutcomeWin", obj.X, got)
	}
}

func TestWinOverridesLoseOnTheSameTick(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, 550)
	factory.CreateFlow(e)
	spawnPlayerAt(e, float64(cfg.C.Width)-50, 540)

	UpdateCollisions(e)

	if got := flowOutcome(e); got != components.OutcomeWin {
		t.Errorf("outcome = %v, want OutcomeWin", got)
	}
}

func TestJumpImpulseOnLanding(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, 550, platformRect{100, 400, 150, 20})
	factory.CreateFlow(e)
	physics, _ := spawnPlayerAt(e, 120, 350)
	physics.JumpHeld = true

	// Landing and takeoff resolve on the same tick.
	UpdateCollisions(e)

	if physics.OnGround {
		t.Error("player still grounded after the jump impulse")
	}
	if physics.SpeedY != -physics.JumpSpeed {
		t.Errorf("SpeedY = %v, want %v", physics.SpeedY, -physics.JumpSpeed)
	}
}

func TestNoSecondImpulseWhileAirborne(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, 550, platformRect{100, 400, 150, 20})
	factory.CreateFlow(e)
	physics, _ := spawnPlayerAt(e, 120, 350)
	physics.JumpHeld = true

	UpdateCollisions(e)

	// Hold jump through the next tick; the rise must follow gravity alone.
	UpdatePhysics(e)
	UpdateCollisions(e)

	want := -physics.JumpSpeed + physics.Gravity
	if math.Abs(physics.SpeedY-want) > 1e-9 {
		t.Errorf("SpeedY on the tick after takeoff = %v, want %v", physics.SpeedY, want)
	}
}
