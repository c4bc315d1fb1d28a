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

// WinScene is shown after reaching the right edge of the level
type WinScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWinScene creates a new win scene
func NewWinScene(sc SceneChanger) *WinScene {
	return &WinScene{sceneChanger: sc}
}

func (ws *WinScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WinScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WinScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger)
	}

	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.NewUpdateEscape(ws.sceneChanger, createMenuScene))
	ws.ecs.AddSystem(systems.UpdateBanner)
	ws.ecs.AddSystem(systems.NewUpdateEndScreen(ws.sceneChanger, cfg.Menu.WinBackButton, "BACK TO MENU", createMenuScene))

	ws.ecs.AddRenderer(cfg.Default, systems.DrawEndScreen)

	factory.CreateBanner(ws.ecs, "YOU WIN!")
}
