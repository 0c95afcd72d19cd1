// internal/component/player.go
package component

// Player — единственный аватар. Позиция задаётся при старте, меняется только
// поворот вслед за курсором.
type Player struct {
	Position Vec2
	Rotation float64 // радианы
	Dead     bool
}
