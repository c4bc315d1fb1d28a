package systems

import (
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves landing, the run outcome and the jump, in that
// order:
//
//  1. Platform landing walks the level's platform list first to last; the
//     first platform whose vertical band contains the player's bottom edge
//     and whose horizontal span overlaps the player wins, even when a later
//     platform sits higher.
//  2. If no platform caught the player and the bottom edge reached the
//     ground line, the player is snapped to the ground and the run is lost.
//  3. Reaching the right screen edge wins the run regardless of vertical
//     state.
//  4. A grounded player holding jump takes off: one impulse per ground
//     contact, since the impulse clears the grounded flag.
func UpdateCollisions(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	flow := getFlow(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		physics.OnGround = false

		bottom := obj.Y + obj.H
		for _, p := range level.Platforms {
			if bottom >= p.Y && bottom <= p.Y+p.H &&
				obj.X+obj.W > p.X && obj.X < p.X+p.W {
				obj.Y = p.Y - obj.H
				physics.OnGround = true
				physics.SpeedY = 0
				break
			}
		}

		// Ground-line fail-safe: falling past every platform ends the run.
		// Platform contact takes priority even when a platform sits on the
		// ground line itself.
		if !physics.OnGround && obj.Y+obj.H >= level.GroundLevel {
			obj.Y = level.GroundLevel - obj.H
			physics.OnGround = true
			physics.SpeedY = 0
			if flow != nil {
				flow.Outcome = components.OutcomeLose
			}
		}

		if obj.X+obj.W >= float64(cfg.C.Width) {
			if flow != nil {
				flow.Outcome = components.OutcomeWin
			}
		}

		if physics.OnGround && physics.JumpHeld {
			physics.OnGround = false
			physics.SpeedY = -physics.JumpSpeed
		}

		obj.Update()
	})
}

func getFlow(e *ecs.ECS) *components.FlowData {
	if entry, ok := components.Flow.First(e.World); ok {
		return components.Flow.Get(entry)
	}
	return nil
}
