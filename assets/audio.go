package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// decode reads an audio file from disk and decodes it into raw PCM bytes.
func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", path, err)
		}
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// LoadSFX loads a sound effect and returns a new player each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	cached, ok := l.sfxCache[path]
	if !ok {
		decoded, err := l.decode(path)
		if err != nil {
			return nil, err
		}
		l.sfxCache[path] = decoded
		cached = decoded
	}
	return l.context.NewPlayer(bytes.NewReader(cached))
}

// LoadMusic loads a music track as an infinitely looping player.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	decoded, err := l.decode(path)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(decoded), int64(len(decoded)))
	return l.context.NewPlayer(loop)
}
