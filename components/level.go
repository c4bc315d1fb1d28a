package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Space *resolv.Space

	// Platforms keeps the level's collision objects in layout order.
	// Landing resolution walks this list first to last, so the earliest
	// listed platform wins when several overlap the player's span.
	Platforms []*resolv.Object

	GroundLevel float64
}

var Level = donburi.NewComponentType[LevelData]()
