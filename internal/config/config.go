// internal/config/config.go
package config

import (
	"image/color"
	"math"
	"os"
)

const (
	WindowTitle  = "Shoot balls at balls"
	ScreenWidth  = 800
	ScreenHeight = 600

	TicksPerSecond   = 60
	FixedDelta       = 1.0 / TicksPerSecond
	MaxDeltaTime     = 0.25 // больше этого кадр считается зависанием
	MaxStepsPerFrame = 8

	WallMargin = 8.0

	BulletSpeed        = 200.0
	BulletLifetime     = 20.0
	BulletDecay        = 0.1  // за тик
	BulletScaleDivisor = 16.0 // масштаб спрайта = lifetime / 16

	ShootCooldown = 0.5
	CooldownDecay = 0.01 // за тик, не зависит от dt

	KillScore = 5

	MinWaveSize = 4
	MaxWaveSize = 7

	EnemyVelXMin = -30.0
	EnemyVelXMax = 70.0
	EnemyVelYMin = -30.0
	EnemyVelYMax = 50.0

	// RotationOffset — фиксированные 90°, вычитаемые из угла прицела, в радианах.
	RotationOffset = math.Pi / 2

	SpriteOrigin = 0.5

	FontFile    = "font.ttf"
	FontSize    = 24.0
	SampleRate  = 44100
	SoundVolume = 0.8
	ResourceEnv = "SHOOT_BALLS_RESOURCES"
	ResourceDir = "./resources"
)

// Hitbox — ширина и высота для проверки AABB.
type Hitbox struct {
	W, H float64
}

var (
	BulletHitbox = Hitbox{W: 16, H: 16}
	EnemyHitbox  = Hitbox{W: 32, H: 32}
	PlayerHitbox = Hitbox{W: 32, H: 32}
)

var (
	BackgroundColor = color.RGBA{50, 50, 50, 255}
	ScoreTextColor  = color.RGBA{255, 255, 255, 255}
)

// SoundExts перебираются по порядку для каждого сигнала.
var SoundExts = []string{".wav", ".ogg", ".mp3"}

// ResourcePath возвращает каталог, из которого грузятся ресурсы.
func ResourcePath() string {
	if dir := os.Getenv(ResourceEnv); dir != "" {
		return dir
	}
	return ResourceDir
}
