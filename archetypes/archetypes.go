package archetypes

import (
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Flow = newArchetype(
		components.Flow,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
