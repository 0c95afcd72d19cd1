package system

import (
	"testing"

	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
	"shoot-balls/internal/event"
	"shoot-balls/internal/utils"
)

func TestWaveSpawnsWhenEmpty(t *testing.T) {
	w := entity.NewWorld(testViewport)
	w.Bullets = []component.Bullet{{Lifetime: 10}}
	s := NewWaveSystem(w, utils.NewPRNGService(3))

	events := s.Update(testViewport, true)

	if n := len(w.Enemies); n < config.MinWaveSize || n > config.MaxWaveSize {
		t.Fatalf("wave size %d out of range", n)
	}
	if len(events) != 1 || events[0].Type != event.WaveStart || events[0].Data != 1 {
		t.Fatalf("events = %+v, want one wave-start for wave 1", events)
	}
	if len(w.Bullets) != 0 {
		t.Fatal("bullets survive a wave spawn")
	}
	if w.Wave != 1 {
		t.Fatalf("wave counter = %d, want 1", w.Wave)
	}

	if events := s.Update(testViewport, true); events != nil {
		t.Fatalf("second update with live enemies spawned again: %+v", events)
	}
	if w.Wave != 1 {
		t.Fatalf("wave counter = %d, want 1", w.Wave)
	}
}

func TestSilentWaveKeepsDeathFlag(t *testing.T) {
	w := entity.NewWorld(testViewport)
	w.Player.Dead = true
	s := NewWaveSystem(w, utils.NewPRNGService(5))

	events := s.Update(testViewport, false)

	if len(events) != 0 {
		t.Fatalf("wave-start must be suppressed, got %+v", events)
	}
	// флаг снимает только сброс в начале следующего тика
	if !w.Player.Dead {
		t.Fatal("spawn cleared the dead flag")
	}
	if len(w.Enemies) < config.MinWaveSize {
		t.Fatalf("no wave spawned: %d enemies", len(w.Enemies))
	}
}

func TestEnemySpawnRanges(t *testing.T) {
	w := entity.NewWorld(testViewport)
	s := NewWaveSystem(w, utils.NewPRNGService(11))

	for i := 0; i < 10000; i++ {
		e := s.NewEnemy(testViewport)
		if e.Velocity.X < config.EnemyVelXMin || e.Velocity.X >= config.EnemyVelXMax {
			t.Fatalf("vx = %f out of [-30, 70)", e.Velocity.X)
		}
		if e.Velocity.Y < config.EnemyVelYMin || e.Velocity.Y >= config.EnemyVelYMax {
			t.Fatalf("vy = %f out of [-30, 50)", e.Velocity.Y)
		}
		if e.Position.X < 0 || e.Position.X >= testViewport.W || e.Position.Y < 0 || e.Position.Y >= testViewport.H {
			t.Fatalf("position %+v outside viewport", e.Position)
		}
		if e.Position.X != float64(int(e.Position.X)) || e.Position.Y != float64(int(e.Position.Y)) {
			t.Fatalf("position %+v not whole pixels", e.Position)
		}
		if e.Dead {
			t.Fatal("enemy spawned dead")
		}
	}
}
