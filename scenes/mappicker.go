package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MapScene lets the player pick the level backdrop
type MapScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMapScene creates a new map picker scene
func NewMapScene(sc SceneChanger) *MapScene {
	return &MapScene{sceneChanger: sc}
}

func (ms *MapScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MapScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MapScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMapPicker(ms.sceneChanger, createMenuScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMapPicker)
}
