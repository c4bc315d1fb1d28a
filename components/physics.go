package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	// IntentX is the horizontal input for this tick: -1, 0 or +1.
	IntentX float64
	// JumpHeld is the continuous jump-key state for this tick.
	JumpHeld bool

	// SpeedY accumulates gravity across ticks. It must never be reset per
	// tick: the fractional part carries over so the fall curve stays smooth.
	SpeedY float64

	Gravity   float64
	MoveSpeed float64
	JumpSpeed float64

	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
