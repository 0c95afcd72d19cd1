// internal/system/projectile.go
package system

import (
	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
	"shoot-balls/internal/event"
	"shoot-balls/internal/utils"
)

// ProjectileSystem управляет временем жизни снарядов и стрельбой
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update уменьшает перезарядку и время жизни снарядов на один тик, затем
// стреляет, если кнопка зажата и перезарядка истекла. Убывание идёт за тик
// и от dt не зависит.
func (s *ProjectileSystem) Update(fire bool) []event.Event {
	s.world.ShootCooldown -= config.CooldownDecay
	for i := range s.world.Bullets {
		s.world.Bullets[i].Lifetime -= config.BulletDecay
	}

	if !fire || s.world.ShootCooldown > 0 {
		return nil
	}
	s.world.ShootCooldown = config.ShootCooldown
	s.world.Bullets = append(s.world.Bullets, NewBullet(s.world.Player))
	return []event.Event{{Type: event.Shoot}}
}

// NewBullet создаёт снаряд в позиции игрока, летящий туда, куда он смотрит.
func NewBullet(player component.Player) component.Bullet {
	// направление считается от -rotation и затем ещё раз инвертируется
	direction := utils.VecFromAngle(-player.Rotation)
	return component.Bullet{
		Position: player.Position,
		Velocity: direction.Scale(config.BulletSpeed).Neg(),
		Lifetime: config.BulletLifetime,
	}
}
