package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuSelect
	SoundMenuNavigate
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	GameMusic string
	SFXPaths  map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		GameMusic: "music/theme.wav",
		SFXPaths: map[SoundID]string{
			SoundMenuSelect:   "music/click.wav",
			SoundMenuNavigate: "music/tick.wav",
		},
	}
}
