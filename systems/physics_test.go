package systems

import (
	"math"
	"testing"

	cfg "github.com/campusgames/cityhop/config"
)

func TestGravityAccumulatesAcrossTicks(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, float64(cfg.Level.GroundLevel))
	physics, obj := spawnPlayerAt(e, 300, 100)

	const ticks = 10
	startY := obj.Y
	for i := 0; i < ticks; i++ {
		UpdatePhysics(e)
	}

	g := physics.Gravity
	wantSpeed := g * ticks
	if math.Abs(physics.SpeedY-wantSpeed) > 1e-9 {
		t.Errorf("SpeedY after %d ticks = %v, want %v", ticks, physics.SpeedY, wantSpeed)
	}

	// Displacement is the sum of the per-tick speeds: g * (1 + 2 + ... + n)
	wantFall := g * ticks * (ticks + 1) / 2
	if math.Abs((obj.Y-startY)-wantFall) > 1e-9 {
		t.Errorf("fall after %d ticks = %v, want %v", ticks, obj.Y-startY, wantFall)
	}
}

func TestFallIsMonotonic(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, float64(cfg.Level.GroundLevel))
	_, obj := spawnPlayerAt(e, 300, 100)

	prev := obj.Y
	for i := 0; i < 20; i++ {
		UpdatePhysics(e)
		if obj.Y <= prev {
			t.Fatalf("tick %d: y went from %v to %v, want strictly increasing", i, prev, obj.Y)
		}
		prev = obj.Y
	}
}

func TestHorizontalMovement(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, float64(cfg.Level.GroundLevel))
	physics, obj := spawnPlayerAt(e, 300, 100)

	physics.IntentX = 1
	UpdatePhysics(e)
	if want := 300 + physics.MoveSpeed; obj.X != want {
		t.Errorf("X after moving right = %v, want %v", obj.X, want)
	}

	physics.IntentX = -1
	UpdatePhysics(e)
	if obj.X != 300 {
		t.Errorf("X after moving back left = %v, want 300", obj.X)
	}
}

func TestHorizontalClampAtScreenEdges(t *testing.T) {
	e := newTestWorld()
	spawnLevel(e, float64(cfg.Level.GroundLevel))
	physics, obj := spawnPlayerAt(e, 0, 100)

	physics.IntentX = -1
	UpdatePhysics(e)
	if obj.X != 0 {
		t.Errorf("X after pushing past the left edge = %v, want 0", obj.X)
	}

	maxX := float64(cfg.C.Width) - obj.W
	obj.X = maxX
	physics.IntentX = 1
	UpdatePhysics(e)
	if obj.X != maxX {
		t.Errorf("X after pushing past the right edge = %v, want %v", obj.X, maxX)
	}
}
