// internal/rlgame/sounds.go
package rlgame

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shoot-balls/internal/config"
	"shoot-balls/internal/event"
)

// SoundBank проигрывает сигналы через аудиоустройство raylib. Без устройства
// игра идёт без звука.
type SoundBank struct {
	sounds   map[event.EventType]rl.Sound
	reported bool
}

func NewSoundBank() *SoundBank {
	return &SoundBank{sounds: make(map[event.EventType]rl.Sound)}
}

// Load ищет файлы сигналов с теми же именами и расширениями, что и
// фронтенд на ebiten.
func (b *SoundBank) Load(dir string) error {
	for _, cue := range event.Cues {
		path, err := findSound(dir, event.CueFiles[cue])
		if err != nil {
			return err
		}
		s := rl.LoadSound(path)
		if s.FrameCount == 0 {
			return fmt.Errorf("%w: sound %s could not be decoded", ErrAssetLoad, path)
		}
		b.sounds[cue] = s
	}
	return nil
}

func findSound(dir, name string) (string, error) {
	for _, ext := range config.SoundExts {
		path := filepath.Join(dir, name+ext)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: sound %s: %v", ErrAssetLoad, path, err)
		}
	}
	return "", fmt.Errorf("%w: sound %s not found in %s", ErrAssetLoad, name, dir)
}

func (b *SoundBank) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(b, event.Cues...)
}

func (b *SoundBank) OnEvent(e event.Event) {
	b.Play(e.Type)
}

func (b *SoundBank) Play(cue event.EventType) {
	if !rl.IsAudioDeviceReady() {
		if !b.reported {
			log.Println("audio: device not ready, cues are muted")
			b.reported = true
		}
		return
	}
	s, ok := b.sounds[cue]
	if !ok {
		return
	}
	rl.PlaySound(s)
}

func (b *SoundBank) Cleanup() {
	for cue, s := range b.sounds {
		rl.UnloadSound(s)
		delete(b.sounds, cue)
	}
}
