package factory

import (
	"github.com/campusgames/cityhop/archetypes"
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and the static platform set. The
// LevelData keeps the platform objects in layout order for landing
// resolution.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16)

	platforms := make([]*resolv.Object, 0, len(cfg.Platforms()))
	for _, p := range cfg.Platforms() {
		platforms = append(platforms, createPlatform(ecs, space, p))
	}

	components.Level.SetValue(level, components.LevelData{
		Space:       space,
		Platforms:   platforms,
		GroundLevel: float64(cfg.Level.GroundLevel),
	})

	return level
}

func createPlatform(ecs *ecs.ECS, space *resolv.Space, p cfg.PlatformRect) *resolv.Object {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(p.X, p.Y, p.Width, p.Height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	space.Add(obj)

	return obj
}

// CreateFlow spawns the per-run outcome holder.
func CreateFlow(ecs *ecs.ECS) *donburi.Entry {
	flow := archetypes.Flow.Spawn(ecs)
	components.Flow.SetValue(flow, components.FlowData{Outcome: components.OutcomeNone})
	return flow
}
