package config

import "image/color"

// SettingsConfig contains settings overlay configuration
type SettingsConfig struct {
	VolumeSteps []float64
}

// Settings is the global settings overlay configuration
var Settings SettingsConfig

// BlackOverlay dims the scene behind the settings overlay
var BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
