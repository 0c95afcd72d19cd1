package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Position Vec2
	Velocity Vec2
	Dead     bool
}
