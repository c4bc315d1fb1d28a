package components

import (
	"github.com/campusgames/cityhop/ui"
	"github.com/yohamta/donburi"
)

// PickerData holds the shared widget set of the map and skin screens.
type PickerData struct {
	Left   *ui.Button
	Right  *ui.Button
	Select *ui.Button
	Back   *ui.Button
}

// All returns the buttons in draw order.
func (p *PickerData) All() []*ui.Button {
	return []*ui.Button{p.Left, p.Right, p.Select, p.Back}
}

var Picker = donburi.NewComponentType[PickerData]()

// EndScreenData holds the single button of the win and lose screens.
type EndScreenData struct {
	Button *ui.Button
}

var EndScreen = donburi.NewComponentType[EndScreenData]()
