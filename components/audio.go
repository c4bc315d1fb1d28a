package components

import (
	cfg "github.com/campusgames/cityhop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects requested by systems this tick. UpdateAudio
// drains the queue; systems never touch the audio device directly.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
