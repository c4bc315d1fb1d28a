package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML override file. Every section is
// optional; absent sections leave the compiled-in defaults untouched.
type fileConfig struct {
	Display *struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		TPS    int    `yaml:"tps"`
		Title  string `yaml:"title"`
	} `yaml:"display"`

	Player *struct {
		MoveSpeed float64 `yaml:"moveSpeed"`
		JumpSpeed float64 `yaml:"jumpSpeed"`
		Gravity   float64 `yaml:"gravity"`
	} `yaml:"player"`

	Audio *struct {
		GameMusic string  `yaml:"gameMusic"`
		MusicVol  float64 `yaml:"musicVol"`
		SFXVol    float64 `yaml:"sfxVol"`
	} `yaml:"audio"`

	Catalog *CatalogConfig `yaml:"catalog"`
}

// Load reads a YAML override file and applies it over the compiled-in
// defaults. A missing file is not an error; a malformed one is.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Display != nil {
		if fc.Display.Width > 0 {
			C.Width = fc.Display.Width
		}
		if fc.Display.Height > 0 {
			C.Height = fc.Display.Height
			Level.GroundLevel = C.Height - 50
		}
		if fc.Display.TPS > 0 {
			C.TPS = fc.Display.TPS
		}
		if fc.Display.Title != "" {
			C.Title = fc.Display.Title
		}
	}

	if fc.Player != nil {
		if fc.Player.MoveSpeed > 0 {
			Player.MoveSpeed = fc.Player.MoveSpeed
		}
		if fc.Player.JumpSpeed > 0 {
			Player.JumpSpeed = fc.Player.JumpSpeed
		}
		if fc.Player.Gravity > 0 {
			Player.Gravity = fc.Player.Gravity
		}
	}

	if fc.Audio != nil {
		if fc.Audio.GameMusic != "" {
			Sound.GameMusic = fc.Audio.GameMusic
		}
		if fc.Audio.MusicVol > 0 {
			Audio.DefaultMusicVol = fc.Audio.MusicVol
		}
		if fc.Audio.SFXVol > 0 {
			Audio.DefaultSFXVol = fc.Audio.SFXVol
		}
	}

	if fc.Catalog != nil {
		if len(fc.Catalog.Maps) > 0 {
			Catalog.Maps = fc.Catalog.Maps
		}
		if len(fc.Catalog.Skins) > 0 {
			Catalog.Skins = fc.Catalog.Skins
		}
		if fc.Catalog.DefaultMap != "" {
			Catalog.DefaultMap = fc.Catalog.DefaultMap
		}
		if fc.Catalog.DefaultSkin != "" {
			Catalog.DefaultSkin = fc.Catalog.DefaultSkin
		}
	}

	return nil
}
