// internal/system/utils.go
package system

import (
	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
)

// Overlaps is the AABB test with the box anchored at the top-left of each
// position. Edges that only touch do not overlap.
func Overlaps(a component.Vec2, ab config.Hitbox, b component.Vec2, bb config.Hitbox) bool {
	return a.X < b.X+bb.W &&
		a.X+ab.W > b.X &&
		a.Y < b.Y+bb.H &&
		a.Y+ab.H > b.Y
}
