package factory

import (
	"github.com/campusgames/cityhop/archetypes"
	"github.com/campusgames/cityhop/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner spawns the fading headline shown on the win and lose screens.
func CreateBanner(ecs *ecs.ECS, text string) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(banner, components.BannerData{
		Text: text,
		Fade: gween.New(0, 1, 0.75, ease.OutQuad),
	})
	return banner
}
