package sound

import (
	"testing"

	"shoot-balls/internal/event"
)

func TestMissingCueIsSwallowed(t *testing.T) {
	s := NewAudioSystem(nil, map[event.EventType][]byte{})
	d := event.NewDispatcher()
	s.Subscribe(d)

	// без аудиоконтекста воспроизведение тихо пропускается
	d.DispatchAll([]event.Event{{Type: event.Shoot}, {Type: event.Shoot}, {Type: event.Die}})

	if s.Active() != 0 {
		t.Fatalf("active players = %d, want 0", s.Active())
	}
	if !s.reported[event.Shoot] || !s.reported[event.Die] {
		t.Fatalf("missing cues not reported: %v", s.reported)
	}
}

func TestSetVolumeAppliesToLaterCues(t *testing.T) {
	s := NewAudioSystem(nil, map[event.EventType][]byte{})
	if s.volume != 1.0 {
		t.Fatalf("default volume = %f, want 1", s.volume)
	}

	s.SetVolume(0.25)
	s.Play(event.Pop)

	if s.volume != 0.25 {
		t.Fatalf("volume = %f, want 0.25", s.volume)
	}
}
