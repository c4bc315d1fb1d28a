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

// SkinScene lets the player pick their character skin
type SkinScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewSkinScene creates a new skin picker scene
func NewSkinScene(sc SceneChanger) *SkinScene {
	return &SkinScene{sceneChanger: sc}
}

func (ss *SkinScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SkinScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SkinScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ss.sceneChanger)
	}

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.NewUpdateSkinPicker(ss.sceneChanger, createMenuScene))

	ss.ecs.AddRenderer(cfg.Default, systems.DrawSkinPicker)
}
