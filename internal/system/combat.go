// internal/system/combat.go
package system

import (
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
	"shoot-balls/internal/event"
)

// CombatSystem проверяет столкновения снарядов с врагами и врагов с игроком
type CombatSystem struct {
	world *entity.World
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Update только помечает попадания, удаление делает проход очистки. Каждый
// снаряд проверяется с каждым врагом, так что один снаряд может сбить двух
// перекрывающихся врагов за тик.
func (s *CombatSystem) Update() []event.Event {
	var events []event.Event
	w := s.world
	for i := range w.Enemies {
		enemy := &w.Enemies[i]
		for j := range w.Bullets {
			bullet := &w.Bullets[j]
			if !Overlaps(bullet.Position, config.BulletHitbox, enemy.Position, config.EnemyHitbox) {
				continue
			}
			enemy.Dead = true
			bullet.Lifetime = 0
			w.Score += config.KillScore
			events = append(events, event.Event{Type: event.Pop, Data: w.Score})
		}

		// враг остаётся на месте до сброса волны
		if Overlaps(w.Player.Position, config.PlayerHitbox, enemy.Position, config.EnemyHitbox) {
			w.Player.Dead = true
		}
	}
	return events
}
