// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"shoot-balls/internal/assets"
	"shoot-balls/internal/config"
	"shoot-balls/internal/event"
	"shoot-balls/internal/sound"
	"shoot-balls/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	gameState      *state.GameState
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout keeps one logical pixel per window pixel, so the simulation sees
// the real window size after a resize.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.gameState.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	dir := config.ResourcePath()
	library, err := assets.Load(dir, config.SampleRate, config.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	audioSystem := sound.NewAudioSystem(audio.NewContext(config.SampleRate), library.Sounds)
	audioSystem.SetVolume(config.SoundVolume)
	audioSystem.Subscribe(dispatcher)

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, library, dispatcher)
	sm.SetState(gs)

	app := &AppGame{
		stateMachine:   sm,
		gameState:      gs,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
