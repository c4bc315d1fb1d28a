package systems

import (
	"github.com/campusgames/cityhop/archetypes"
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/systems/factory"
	"github.com/campusgames/cityhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Test helpers shared by the system tests. Worlds are built per test and
// input is written straight into the input component, so no test ever
// touches the keyboard, mouse or audio device.

func newTestWorld() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

type fakeSceneChanger struct {
	changed interface{}
}

func (f *fakeSceneChanger) ChangeScene(scene interface{}) {
	f.changed = scene
}

// platformRect is x, y, w, h.
type platformRect [4]float64

// spawnLevel installs a level with the given platforms in the given order.
func spawnLevel(e *ecs.ECS, ground float64, rects ...platformRect) *components.LevelData {
	entry := archetypes.Level.Spawn(e)

	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)
	platforms := make([]*resolv.Object, 0, len(rects))
	for _, r := range rects {
		obj := resolv.NewObject(r[0], r[1], r[2], r[3], tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r[2], r[3]))
		space.Add(obj)
		platforms = append(platforms, obj)
	}

	components.Level.SetValue(entry, components.LevelData{
		Space:       space,
		Platforms:   platforms,
		GroundLevel: ground,
	})
	return components.Level.Get(entry)
}

// spawnPlayerAt spawns the player and moves it to the given position,
// airborne with zero velocity.
func spawnPlayerAt(e *ecs.ECS, x, y float64) (*components.PhysicsData, *components.ObjectData) {
	entry := factory.CreatePlayer(e, cfg.Catalog.DefaultSkin)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	obj.X = x
	obj.Y = y
	obj.Update()
	physics.OnGround = false
	physics.SpeedY = 0

	return physics, obj
}

// setCursor places the pointer, optionally with the button going down this
// frame.
func setCursor(e *ecs.ECS, x, y int, click bool) *components.InputData {
	input := getOrCreateInput(e)
	input.CursorX = x
	input.CursorY = y
	input.MousePrev = false
	input.MouseDown = click
	return input
}

// pressAction marks an action as newly pressed this frame.
func pressAction(e *ecs.ECS, id cfg.ActionID) *components.InputData {
	input := getOrCreateInput(e)
	input.Previous[id] = false
	input.Current[id] = true
	return input
}

func flowOutcome(e *ecs.ECS) components.Outcome {
	if flow := getFlow(e); flow != nil {
		return flow.Outcome
	}
	return components.OutcomeNone
}
