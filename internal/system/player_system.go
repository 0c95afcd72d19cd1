// internal/system/player_system.go
package system

import (
	"math"

	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
	"shoot-balls/internal/utils"
)

// PlayerSystem поворачивает игрока к курсору.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

// Aim заново вычисляет поворот каждый тик. Со смещением верх спрайта
// смотрит на курсор.
func (s *PlayerSystem) Aim(pointer component.Vec2) {
	p := &s.world.Player
	dx := p.Position.X - pointer.X
	dy := p.Position.Y - pointer.Y
	p.Rotation = utils.NormalizeAngle(math.Atan2(dy, dx) - config.RotationOffset)
}
