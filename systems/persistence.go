package systems

import (
	"encoding/json"

	cfg "github.com/campusgames/cityhop/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// Profile holds the player's selections, kept across runs. These are
// preferences, not progress: the level itself always starts fresh.
type Profile struct {
	MapID  string `json:"mapId"`
	SkinID string `json:"skinId"`
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

var (
	gdataManager     *gdata.Manager
	gdataInitialized bool
	activeProfile    *Profile
)

// InitPersistence initializes the gdata manager for profile and settings
// storage. Failure is not fatal: the game runs with defaults.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cityhop",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// ActiveProfile returns the current profile, loading it from disk on first
// use and falling back to the catalog defaults.
func ActiveProfile() *Profile {
	if activeProfile != nil {
		return activeProfile
	}

	activeProfile = &Profile{
		MapID:  cfg.Catalog.DefaultMap,
		SkinID: cfg.Catalog.DefaultSkin,
	}

	if gdataInitialized && gdataManager != nil {
		if data, err := gdataManager.LoadItem("profile"); err == nil && data != nil {
			var saved Profile
			if err := json.Unmarshal(data, &saved); err != nil {
				log.Warn("could not parse saved profile", "err", err)
			} else {
				if saved.MapID != "" {
					activeProfile.MapID = saved.MapID
				}
				if saved.SkinID != "" {
					activeProfile.SkinID = saved.SkinID
				}
			}
		}
	}

	return activeProfile
}

// SaveProfile writes the active profile to disk.
func SaveProfile() {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(ActiveProfile())
	if err != nil {
		log.Warn("could not serialize profile", "err", err)
		return
	}
	if err := gdataManager.SaveItem("profile", data); err != nil {
		log.Warn("could not save profile", "err", err)
	}
}

// LoadSettings loads settings from disk. Returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live audio/display state.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		MusicVolume: MusicVolume(),
		SFXVolume:   SFXVolume(),
		Muted:       Muted(),
		Fullscreen:  ebiten.IsFullscreen(),
	}
}

// ApplySavedSettings applies loaded settings to the audio and display state.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
}
