// internal/sound/audio_system.go
package sound

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"shoot-balls/internal/event"
)

// AudioSystem plays one-shot cues in response to simulation events.
// Playback problems are logged and never reach the simulation.
type AudioSystem struct {
	audioContext *audio.Context
	sounds       map[event.EventType][]byte
	active       []*audio.Player
	volume       float64
	reported     map[event.EventType]bool
}

// NewAudioSystem creates a new audio system over already decoded cues.
func NewAudioSystem(ctx *audio.Context, sounds map[event.EventType][]byte) *AudioSystem {
	return &AudioSystem{
		audioContext: ctx,
		sounds:       sounds,
		volume:       1.0,
		reported:     make(map[event.EventType]bool),
	}
}

// Subscribe registers the system for every cue.
func (s *AudioSystem) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.Cues...)
}

func (s *AudioSystem) OnEvent(e event.Event) {
	s.Play(e.Type)
}

// SetVolume sets the volume for cues started afterwards.
func (s *AudioSystem) SetVolume(v float64) {
	s.volume = v
}

// Play starts cue on a fresh player so overlapping cues do not cut each
// other off.
func (s *AudioSystem) Play(cue event.EventType) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: playback of %q failed: %v", cue, r)
		}
	}()

	pcm, ok := s.sounds[cue]
	if !ok || s.audioContext == nil {
		if !s.reported[cue] {
			log.Printf("audio: no sound for cue %q", cue)
			s.reported[cue] = true
		}
		return
	}

	s.prune()
	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
	s.active = append(s.active, player)
}

// prune releases players that finished.
func (s *AudioSystem) prune() {
	kept := s.active[:0]
	for _, p := range s.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("audio: close player: %v", err)
		}
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
}

// Active returns how many cues are still referenced.
func (s *AudioSystem) Active() int {
	return len(s.active)
}
