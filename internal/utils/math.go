// internal/utils/math.go
package utils

import (
	"math"

	"shoot-balls/internal/component"
)

// VecFromAngle возвращает (sin a, cos a): угол 0 смотрит вниз по экрану.
func VecFromAngle(angle float64) component.Vec2 {
	return component.Vec2{X: math.Sin(angle), Y: math.Cos(angle)}
}

// RadToDeg переводит радианы в градусы (raylib принимает градусы)
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
