// internal/component/projectile.go
package component

// Bullet представляет летящий снаряд игрока.
type Bullet struct {
	Position Vec2
	Velocity Vec2
	Lifetime float64 // убывает каждый тик, при <= 0 снаряд удаляется
}
