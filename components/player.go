package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// SkinID is the appearance identifier applied from the skin picker.
	SkinID string
}

var Player = donburi.NewComponentType[PlayerData]()
