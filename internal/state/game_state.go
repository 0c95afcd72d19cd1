// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"shoot-balls/internal/app"
	"shoot-balls/internal/assets"
	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/event"
	"shoot-balls/internal/ui"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState ведёт симуляцию из ebiten: читает ввод, прогоняет фиксированные
// шаги и превращает Frame в вызовы отрисовки.
type GameState struct {
	sm         *StateMachine
	game       *app.Game
	clock      *app.Clock
	library    *assets.Library
	dispatcher *event.Dispatcher
	scoreLabel *ui.ScoreLabel
	viewport   component.Size
	showFPS    bool
}

// NewGameState связывает симуляцию с загруженными ресурсами. Слушателей
// событий вызывающий подписывает на dispatcher заранее.
func NewGameState(sm *StateMachine, library *assets.Library, dispatcher *event.Dispatcher) *GameState {
	viewport := component.Size{W: config.ScreenWidth, H: config.ScreenHeight}
	gs := &GameState{
		sm:         sm,
		game:       app.NewGame(viewport, 0),
		clock:      app.NewClock(config.FixedDelta, config.MaxStepsPerFrame),
		library:    library,
		dispatcher: dispatcher,
		scoreLabel: ui.NewScoreLabel(0, 0, library.ScoreFace, config.ScoreTextColor),
		viewport:   viewport,
	}
	// первая волна должна быть на экране уже в первом кадре
	dispatcher.DispatchAll(gs.game.Start(viewport).Events)
	return gs
}

func (g *GameState) Enter() {
	// сбрасываем накопленное время, чтобы после паузы не было рывка
	g.clock = app.NewClock(config.FixedDelta, config.MaxStepsPerFrame)
}

func (g *GameState) Exit() {}

// SetViewport вызывается из Layout, когда известен размер окна.
func (g *GameState) SetViewport(w, h int) {
	g.viewport = component.Size{W: float64(w), H: float64(h)}
}

func (g *GameState) Update(deltaTime float64) {
	if !ebiten.IsFocused() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}

	steps := g.clock.Advance(deltaTime)
	for i := 0; i < steps; i++ {
		fx := g.game.Tick(config.FixedDelta, g.sampleInput())
		g.dispatcher.DispatchAll(fx.Events)
	}
}

func (g *GameState) sampleInput() app.Input {
	x, y := ebiten.CursorPosition()
	return app.Input{
		Pointer:  component.Vec2{X: float64(x), Y: float64(y)},
		Fire:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Viewport: g.viewport,
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	frame := g.game.Render()
	for _, cmd := range frame.Sprites {
		g.drawSprite(screen, cmd)
	}
	g.scoreLabel.Draw(screen, frame.Score)

	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 0, screen.Bounds().Dy()-16)
	}
}

func (g *GameState) drawSprite(screen *ebiten.Image, cmd app.DrawCommand) {
	img, ok := g.library.Sprites[cmd.Sprite]
	if !ok {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())*cmd.OriginX, -float64(b.Dy())*cmd.OriginY)
	op.GeoM.Scale(cmd.ScaleX, cmd.ScaleY)
	op.GeoM.Rotate(cmd.Rotation)
	op.GeoM.Translate(cmd.X, cmd.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
