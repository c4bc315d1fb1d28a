package systems

import (
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer translates held keys into the physics intent for this tick.
// The jump itself is applied after landing resolution in UpdateCollisions,
// so a player grounded this tick can take off on the same tick.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)

		physics.IntentX = 0
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			physics.IntentX -= 1
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			physics.IntentX += 1
		}

		physics.JumpHeld = GetAction(input, cfg.ActionJump).Pressed
	})
}

// NewUpdateEscape returns a system that leaves the game screen for the menu
// when Escape is pressed, pausing the music. The next game entry rebuilds
// the world, which resets the player to spawn.
func NewUpdateEscape(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionBack).JustPressed {
			PauseMusic()
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}
