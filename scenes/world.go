package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/systems"
	"github.com/campusgames/cityhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the actual game
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates a new game scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}
	createWinScene := func() interface{} {
		return NewWinScene(ps.sceneChanger)
	}
	createLoseScene := func() interface{} {
		return NewLoseScene(ps.sceneChanger)
	}

	// Update order matters: intent, then movement, then collision
	// resolution, then outcome handling.
	ps.ecs.AddSystem(systems.UpdateAudio)
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.NewUpdateEscape(ps.sceneChanger, createMenuScene))
	ps.ecs.AddSystem(systems.UpdatePlayer)
	ps.ecs.AddSystem(systems.UpdatePhysics)
	ps.ecs.AddSystem(systems.UpdateCollisions)
	ps.ecs.AddSystem(systems.NewUpdateFlow(ps.sceneChanger, createWinScene, createLoseScene))

	ps.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)

	factory.CreateLevel(ps.ecs)
	factory.CreateFlow(ps.ecs)
	factory.CreatePlayer(ps.ecs, systems.ActiveProfile().SkinID)

	systems.StartGameMusic()
}
