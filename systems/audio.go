package systems

import (
	"sync"

	"github.com/campusgames/cityhop/assets"
	"github.com/campusgames/cityhop/components"
	cfg "github.com/campusgames/cityhop/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// UpdateAudio drains the sound effects queued by systems this tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) > 0 {
		initGlobalAudio()
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect for the next UpdateAudio pass. Systems call
// this instead of touching the audio device so they stay testable.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.Create(cfg.Default, components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Warn("sound effect unavailable", "path", path, "err", err)
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// StartGameMusic starts the looping game track, or resumes it when it was
// paused by leaving the game screen. A missing track is reported once and
// the game plays on in silence.
func StartGameMusic() {
	if globalMusicPlayer != nil {
		if !globalMusicPlayer.IsPlaying() {
			globalMusicPlayer.Play()
		}
		return
	}

	initGlobalAudio()

	player, err := globalAudioLoader.LoadMusic(cfg.Sound.GameMusic)
	if err != nil {
		log.Warn("game music unavailable", "path", cfg.Sound.GameMusic, "err", err)
		return
	}

	player.SetVolume(effectiveMusicVolume())
	player.Play()
	globalMusicPlayer = player
}

// PauseMusic pauses the game track; StartGameMusic resumes it.
func PauseMusic() {
	if globalMusicPlayer != nil && globalMusicPlayer.IsPlaying() {
		globalMusicPlayer.Pause()
	}
}

// SetMusicVolume adjusts the music volume, applying it to the live player.
func SetMusicVolume(v float64) {
	globalMusicVolume = clampVolume(v)
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// SetSFXVolume adjusts the volume applied to subsequent sound effects.
func SetSFXVolume(v float64) {
	globalSFXVolume = clampVolume(v)
}

// SetMuted silences both music and sound effects without losing the
// configured volumes.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// MusicVolume returns the configured music volume.
func MusicVolume() float64 { return globalMusicVolume }

// SFXVolume returns the configured sound effect volume.
func SFXVolume() float64 { return globalSFXVolume }

// Muted reports whether audio is muted.
func Muted() bool { return globalMuted }

func effectiveMusicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
