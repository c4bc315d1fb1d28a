package systems

import (
	cfg "github.com/campusgames/cityhop/config"
	"github.com/campusgames/cityhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// The settings overlay is process-wide, like the audio state it edits: the
// ebitenui tree is built once and shown on top of whichever scene opened it.
var (
	settingsOpen bool
	settingsUI   *ui.SettingsUI
)

// IsSettingsOpen reports whether the overlay is showing.
func IsSettingsOpen() bool {
	return settingsOpen
}

// OpenSettings shows the settings overlay.
func OpenSettings() {
	if settingsUI == nil {
		settingsUI = ui.NewSettingsUI(ui.SettingsCallbacks{
			OnMusicVolume: func(delta int) {
				SetMusicVolume(stepVolume(MusicVolume(), delta))
				refreshSettingsUI()
			},
			OnSFXVolume: func(delta int) {
				SetSFXVolume(stepVolume(SFXVolume(), delta))
				refreshSettingsUI()
			},
			OnToggleFullscreen: func() {
				ebiten.SetFullscreen(!ebiten.IsFullscreen())
				refreshSettingsUI()
			},
			OnToggleMute: func() {
				SetMuted(!Muted())
				refreshSettingsUI()
			},
			OnDone: func() {
				settingsOpen = false
				_ = SaveSettings(CurrentSettings())
			},
		})
	}

	refreshSettingsUI()
	settingsOpen = true
}

// UpdateSettingsMenu drives the overlay widgets while open.
func UpdateSettingsMenu(e *ecs.ECS) {
	if !settingsOpen {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionBack).JustPressed {
		settingsOpen = false
		_ = SaveSettings(CurrentSettings())
		return
	}

	settingsUI.UI.Update()
}

// DrawSettingsMenu dims the scene and renders the overlay on top.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	if !settingsOpen {
		return
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		cfg.BlackOverlay,
		false,
	)

	settingsUI.UI.Draw(screen)
}

func refreshSettingsUI() {
	settingsUI.Refresh(MusicVolume(), SFXVolume(), ebiten.IsFullscreen(), Muted())
}

// stepVolume moves the volume one notch along the configured steps.
func stepVolume(current float64, delta int) float64 {
	steps := cfg.Settings.VolumeSteps

	nearest := 0
	for i, s := range steps {
		if abs(s-current) < abs(steps[nearest]-current) {
			nearest = i
		}
	}

	next := nearest + delta
	if next < 0 {
		next = 0
	}
	if next > len(steps)-1 {
		next = len(steps) - 1
	}
	return steps[next]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
