// internal/app/game.go
package app

import (
	"log"

	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/entity"
	"shoot-balls/internal/event"
	"shoot-balls/internal/system"
	"shoot-balls/internal/utils"
)

// Input is sampled by the frontend once per tick.
type Input struct {
	Pointer  component.Vec2
	Fire     bool // primary mouse button held
	Viewport component.Size
}

// Effects collects what a tick wants the frontend to do besides drawing.
type Effects struct {
	Events []event.Event
}

// Has reports whether an event of type t was produced.
func (fx Effects) Has(t event.EventType) bool {
	return fx.Count(t) > 0
}

// Count returns how many events of type t were produced.
func (fx Effects) Count(t event.EventType) int {
	n := 0
	for _, e := range fx.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Game holds the simulation state and the systems that advance it. It never
// touches the window, input devices or audio; frontends feed it Input and
// act on the returned Effects.
type Game struct {
	World            *entity.World
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	WaveSystem       *system.WaveSystem
}

// NewGame creates a game for the given initial viewport. seed 0 picks a
// time-based seed.
func NewGame(viewport component.Size, seed int64) *Game {
	world := entity.NewWorld(viewport)
	rng := utils.NewPRNGService(seed)
	return &Game{
		World:            world,
		MovementSystem:   system.NewMovementSystem(world),
		CombatSystem:     system.NewCombatSystem(world),
		ProjectileSystem: system.NewProjectileSystem(world),
		PlayerSystem:     system.NewPlayerSystem(world),
		WaveSystem:       system.NewWaveSystem(world, rng),
	}
}

// Tick advances the simulation by one fixed step.
func (g *Game) Tick(deltaTime float64, in Input) Effects {
	var fx Effects
	w := g.World

	// A death is handled at the start of the tick after the one that set it,
	// even if that tick also cleared the wave.
	respawn := w.Player.Dead
	if respawn {
		log.Printf("player died with score %d", w.Score)
		w.Score = 0
		w.ClearEntities()
		w.Player.Dead = false
		fx.Events = append(fx.Events, event.Event{Type: event.Die})
	}

	g.PlayerSystem.Aim(in.Pointer)
	g.MovementSystem.Update(deltaTime, in.Viewport)
	fx.Events = append(fx.Events, g.CombatSystem.Update()...)
	fx.Events = append(fx.Events, g.ProjectileSystem.Update(in.Fire)...)

	w.Compact()

	announce := !respawn && !w.Player.Dead
	fx.Events = append(fx.Events, g.WaveSystem.Update(in.Viewport, announce)...)
	return fx
}

// Start runs the first tick before anything is drawn so the opening wave is
// already on screen. The pointer is not known yet and fire is released.
func (g *Game) Start(viewport component.Size) Effects {
	return g.Tick(config.FixedDelta, Input{Pointer: g.World.Player.Position, Viewport: viewport})
}

// Render describes the current state as draw commands.
func (g *Game) Render() Frame {
	w := g.World
	frame := Frame{
		Sprites: make([]DrawCommand, 0, 1+len(w.Bullets)+len(w.Enemies)),
		Score:   w.Score,
	}

	frame.Sprites = append(frame.Sprites, DrawCommand{
		Sprite:   SpritePlayer,
		X:        w.Player.Position.X,
		Y:        w.Player.Position.Y,
		Rotation: w.Player.Rotation,
		OriginX:  config.SpriteOrigin,
		OriginY:  config.SpriteOrigin,
		ScaleX:   1,
		ScaleY:   1,
	})
	for _, b := range w.Bullets {
		scale := b.Lifetime / config.BulletScaleDivisor
		frame.Sprites = append(frame.Sprites, DrawCommand{
			Sprite:  SpriteBullet,
			X:       b.Position.X,
			Y:       b.Position.Y,
			OriginX: config.SpriteOrigin,
			OriginY: config.SpriteOrigin,
			ScaleX:  scale,
			ScaleY:  scale,
		})
	}
	for _, e := range w.Enemies {
		frame.Sprites = append(frame.Sprites, DrawCommand{
			Sprite:  SpriteEnemy,
			X:       e.Position.X,
			Y:       e.Position.Y,
			OriginX: config.SpriteOrigin,
			OriginY: config.SpriteOrigin,
			ScaleX:  1,
			ScaleY:  1,
		})
	}
	return frame
}
