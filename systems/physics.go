package systems

import (
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the player: horizontal displacement clamped to the
// screen, then gravity. SpeedY accumulates across ticks; it is only ever
// zeroed by landing, so the fall curve stays continuous.
func UpdatePhysics(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += physics.IntentX * physics.MoveSpeed

		maxX := float64(cfg.C.Width) - obj.W
		if obj.X < 0 {
			obj.X = 0
		}
		if obj.X > maxX {
			obj.X = maxX
		}

		physics.SpeedY += physics.Gravity
		obj.Y += physics.SpeedY

		obj.Update()
	})
}
