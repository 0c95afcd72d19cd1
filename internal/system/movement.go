// internal/system/movement.go
package system

import (
	"math"

	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
)

// MovementSystem двигает снаряды и врагов и отражает их от краёв экрана
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update(deltaTime float64, viewport component.Size) {
	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		b.Position = b.Position.Add(b.Velocity.Scale(deltaTime))
		bounce(b.Position, &b.Velocity, viewport)
	}
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
		bounce(e.Position, &e.Velocity, viewport)
	}
}

// bounce направляет компоненту скорости внутрь вьюпорта, если позиция ближе
// WallMargin к краю. Модуль сохраняется, меняется только знак.
func bounce(pos component.Vec2, vel *component.Vec2, viewport component.Size) {
	if pos.Y < config.WallMargin {
		vel.Y = math.Abs(vel.Y)
	} else if pos.Y > viewport.H-config.WallMargin {
		vel.Y = -math.Abs(vel.Y)
	}
	if pos.X < config.WallMargin {
		vel.X = math.Abs(vel.X)
	} else if pos.X > viewport.W-config.WallMargin {
		vel.X = -math.Abs(vel.X)
	}
}
