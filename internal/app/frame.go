// internal/app/frame.go
package app

// SpriteID is a logical sprite handle; frontends map it to a loaded image.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteBullet
	SpriteEnemy
)

// Sprites lists every handle a frontend must provide.
var Sprites = []SpriteID{SpritePlayer, SpriteBullet, SpriteEnemy}

func (id SpriteID) String() string {
	switch id {
	case SpritePlayer:
		return "player"
	case SpriteBullet:
		return "shot"
	case SpriteEnemy:
		return "enemy"
	}
	return "unknown"
}

// DrawCommand draws one sprite. Origin is a fraction of the sprite size that
// lands on (X, Y) and is the pivot for Rotation (radians) and scale.
type DrawCommand struct {
	Sprite           SpriteID
	X, Y             float64
	Rotation         float64
	OriginX, OriginY float64
	ScaleX, ScaleY   float64
}

// Frame is everything needed to draw one screen.
type Frame struct {
	Sprites []DrawCommand
	Score   int
}
