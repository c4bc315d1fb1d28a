package components

import (
	"github.com/campusgames/cityhop/ui"
	"github.com/yohamta/donburi"
)

// MenuData holds the main menu's clickable buttons.
type MenuData struct {
	Play     *ui.Button
	Skins    *ui.Button
	Maps     *ui.Button
	Settings *ui.Button
	Exit     *ui.Button
}

// All returns the buttons in draw order.
func (m *MenuData) All() []*ui.Button {
	return []*ui.Button{m.Play, m.Skins, m.Maps, m.Settings, m.Exit}
}

var Menu = donburi.NewComponentType[MenuData]()
