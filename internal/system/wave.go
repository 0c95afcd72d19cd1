// internal/system/wave.go
package system

import (
	"log"

	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
	"shoot-balls/internal/event"
	"shoot-balls/internal/utils"
)

type WaveSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{world: world, rng: rng}
}

// Update спавнит новую волну, когда врагов не осталось. Сигнал wave-start
// отправляется только при announce; флаг смерти игрока здесь не трогается.
func (s *WaveSystem) Update(viewport component.Size, announce bool) []event.Event {
	w := s.world
	if len(w.Enemies) > 0 {
		return nil
	}

	w.ClearEntities()

	var events []event.Event
	if announce {
		events = append(events, event.Event{Type: event.WaveStart, Data: w.Wave + 1})
	}

	s.spawnWave(viewport)
	w.Wave++
	log.Printf("wave %d: %d enemies", w.Wave, len(w.Enemies))
	return events
}

func (s *WaveSystem) spawnWave(viewport component.Size) {
	count := s.rng.IntRange(config.MinWaveSize, config.MaxWaveSize)
	for i := 0; i < count; i++ {
		s.world.Enemies = append(s.world.Enemies, s.NewEnemy(viewport))
	}
}

// NewEnemy ставит врага в случайную целую точку вьюпорта со случайной
// скоростью, смещённой вправо и вниз.
func (s *WaveSystem) NewEnemy(viewport component.Size) component.Enemy {
	return component.Enemy{
		Position: component.Vec2{
			X: s.rng.FloorRange(0, viewport.W),
			Y: s.rng.FloorRange(0, viewport.H),
		},
		Velocity: component.Vec2{
			X: s.rng.Range(config.EnemyVelXMin, config.EnemyVelXMax),
			Y: s.rng.Range(config.EnemyVelYMin, config.EnemyVelYMax),
		},
	}
}
