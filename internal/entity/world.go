// internal/entity/world.go
package entity

import "shoot-balls/internal/component"

// lifetimeEpsilon absorbs float drift of repeated 0.1 decrements, so a bullet
// started at 20.0 is spent after exactly 200 decays.
const lifetimeEpsilon = 1e-9

// World holds the whole simulation state. It is owned by a single goroutine.
type World struct {
	Player        component.Player
	Bullets       []component.Bullet
	Enemies       []component.Enemy
	Score         int
	ShootCooldown float64
	Wave          int // waves spawned this session
}

// NewWorld places the player in the centre of the viewport.
func NewWorld(viewport component.Size) *World {
	return &World{
		Player: component.Player{
			Position: component.Vec2{X: viewport.W * 0.5, Y: viewport.H * 0.5},
		},
	}
}

// ClearEntities drops every bullet and enemy.
func (w *World) ClearEntities() {
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
}

// BulletSpent reports whether b has run out of lifetime.
func BulletSpent(b *component.Bullet) bool {
	return b.Lifetime <= lifetimeEpsilon
}

// Compact is the cleanup pass: spent bullets and dead enemies are removed by
// swap-remove. Order of the survivors is not preserved.
func (w *World) Compact() {
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		if BulletSpent(&w.Bullets[i]) {
			last := len(w.Bullets) - 1
			w.Bullets[i] = w.Bullets[last]
			w.Bullets = w.Bullets[:last]
		}
	}
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if w.Enemies[i].Dead {
			last := len(w.Enemies) - 1
			w.Enemies[i] = w.Enemies[last]
			w.Enemies = w.Enemies[:last]
		}
	}
}
