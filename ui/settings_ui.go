package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsCallbacks connects the overlay widgets to the settings state.
type SettingsCallbacks struct {
	OnMusicVolume      func(delta int)
	OnSFXVolume        func(delta int)
	OnToggleFullscreen func()
	OnToggleMute       func()
	OnDone             func()
}

// SettingsUI holds the ebitenui interface for the settings overlay
type SettingsUI struct {
	UI *ebitenui.UI

	callbacks SettingsCallbacks

	// Widget references for updates
	musicLabel       *widget.Label
	sfxLabel         *widget.Label
	fullscreenButton *widget.Button
	muteButton       *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI creates the settings overlay with ebitenui
func NewSettingsUI(cb SettingsCallbacks) *SettingsUI {
	sui := &SettingsUI{callbacks: cb}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.RGBA{30, 30, 40, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	sui.musicLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
	contentContainer.AddChild(sui.buildVolumeRow("Music", sui.musicLabel, sui.callbacks.OnMusicVolume))

	sui.sfxLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
	contentContainer.AddChild(sui.buildVolumeRow("SFX", sui.sfxLabel, sui.callbacks.OnSFXVolume))

	sui.fullscreenButton = sui.textButton("Fullscreen: Off", func() {
		if sui.callbacks.OnToggleFullscreen != nil {
			sui.callbacks.OnToggleFullscreen()
		}
	})
	contentContainer.AddChild(sui.fullscreenButton)

	sui.muteButton = sui.textButton("Mute: Off", func() {
		if sui.callbacks.OnToggleMute != nil {
			sui.callbacks.OnToggleMute()
		}
	})
	contentContainer.AddChild(sui.muteButton)

	doneButton := sui.textButton("Done", func() {
		if sui.callbacks.OnDone != nil {
			sui.callbacks.OnDone()
		}
	})
	contentContainer.AddChild(doneButton)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildVolumeRow(name string, valueLabel *widget.Label, onChange func(delta int)) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	row.AddChild(sui.textButton("-", func() {
		if onChange != nil {
			onChange(-1)
		}
	}))
	row.AddChild(valueLabel)
	row.AddChild(sui.textButton("+", func() {
		if onChange != nil {
			onChange(+1)
		}
	}))

	return row
}

func (sui *SettingsUI) textButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(40, 28),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     eimage.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    eimage.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  eimage.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: eimage.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Refresh syncs widget labels with the current settings values.
func (sui *SettingsUI) Refresh(musicVol, sfxVol float64, fullscreen, muted bool) {
	sui.musicLabel.Label = fmt.Sprintf("%d%%", int(musicVol*100))
	sui.sfxLabel.Label = fmt.Sprintf("%d%%", int(sfxVol*100))

	if textWidget := sui.fullscreenButton.Text(); textWidget != nil {
		textWidget.Label = "Fullscreen: " + onOff(fullscreen)
	}
	if textWidget := sui.muteButton.Text(); textWidget != nil {
		textWidget.Label = "Mute: " + onOff(muted)
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
