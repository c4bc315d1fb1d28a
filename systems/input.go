package systems

import (
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// UpdateInput polls raw keyboard and pointer state into the input component.
// Must run before every system that reads input.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.MousePrev = input.MouseDown
	input.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// GetAction computes the temporal state of an action by comparing frames.
func GetAction(input *components.InputData, actionID cfg.ActionID) components.ActionState {
	current := input.Current[actionID]
	previous := input.Previous[actionID]

	return components.ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}
