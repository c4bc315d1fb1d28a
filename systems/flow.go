package systems

import (
	"github.com/campusgames/cityhop/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFlow returns a system that maps the physics outcome to a scene
// transition. Win and Lose are the only transitions the simulation itself
// can trigger; everything else is driven by UI actions.
func NewUpdateFlow(sceneChanger SceneChanger, createWinScene, createLoseScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		flow := getFlow(e)
		if flow == nil {
			return
		}

		switch flow.Outcome {
		case components.OutcomeWin:
			sceneChanger.ChangeScene(createWinScene())
		case components.OutcomeLose:
			sceneChanger.ChangeScene(createLoseScene())
		}
	}
}
