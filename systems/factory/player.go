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

// CreatePlayer spawns the player at the level's spawn point: resting on the
// leftmost ground platform with zero velocity. Every transition that needs a
// reset builds a fresh world through here, so spawn state has a single author.
func CreatePlayer(ecs *ecs.ECS, skinID string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.Width)
	h := float64(cfg.Player.Height)
	obj := resolv.NewObject(cfg.SpawnX(), cfg.SpawnY(), w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		SkinID: skinID,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:   cfg.Player.Gravity,
		MoveSpeed: cfg.Player.MoveSpeed,
		JumpSpeed: cfg.Player.JumpSpeed,
		OnGround:  true,
	})

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(levelEntry).Space.Add(obj)
	}

	return player
}
