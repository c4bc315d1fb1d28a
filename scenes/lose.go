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

// LoseScene is shown after the player falls to the ground line
type LoseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewLoseScene creates a new lose scene
func NewLoseScene(sc SceneChanger) *LoseScene {
	return &LoseScene{sceneChanger: sc}
}

func (ls *LoseScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LoseScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LoseScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	createGameScene := func() interface{} {
		return NewPlatformerScene(ls.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ls.sceneChanger)
	}

	ls.ecs.AddSystem(systems.UpdateAudio)
	ls.ecs.AddSystem(systems.UpdateInput)
	ls.ecs.AddSystem(systems.NewUpdateEscape(ls.sceneChanger, createMenuScene))
	ls.ecs.AddSystem(systems.UpdateBanner)
	ls.ecs.AddSystem(systems.NewUpdateEndScreen(ls.sceneChanger, cfg.Menu.TryAgainButton, "TRY AGAIN", createGameScene))

	ls.ecs.AddRenderer(cfg.Default, systems.DrawEndScreen)

	factory.CreateBanner(ls.ecs, "GAME OVER")
}
