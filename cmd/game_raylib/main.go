// cmd/game_raylib/main.go
package main

import (
	"log"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shoot-balls/internal/app"
	"shoot-balls/internal/component"
	"shoot-balls/internal/config"
	"shoot-balls/internal/event"
	"shoot-balls/internal/rlgame"
)

func main() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	if !rl.IsWindowReady() {
		log.Fatal("raylib: window could not be created")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	rl.SetMasterVolume(float32(config.SoundVolume))

	dir := config.ResourcePath()
	textures := rlgame.NewTextureManager()
	if err := textures.Load(dir); err != nil {
		log.Fatal(err)
	}
	defer textures.Cleanup()

	sounds := rlgame.NewSoundBank()
	if err := sounds.Load(dir); err != nil {
		log.Fatal(err)
	}
	defer sounds.Cleanup()

	font, err := rlgame.LoadFont(filepath.Join(dir, config.FontFile))
	if err != nil {
		log.Fatal(err)
	}
	defer rl.UnloadFont(font)

	dispatcher := event.NewDispatcher()
	sounds.Subscribe(dispatcher)

	viewport := component.Size{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())}
	game := app.NewGame(viewport, 0)
	dispatcher.DispatchAll(game.Start(viewport).Events)
	clock := app.NewClock(config.FixedDelta, config.MaxStepsPerFrame)
	renderer := rlgame.NewRenderer(textures, font)

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		if !rl.IsWindowFocused() {
			deltaTime = 0
		}

		steps := clock.Advance(deltaTime)
		for i := 0; i < steps; i++ {
			mouse := rl.GetMousePosition()
			in := app.Input{
				Pointer:  component.Vec2{X: float64(mouse.X), Y: float64(mouse.Y)},
				Fire:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
				Viewport: component.Size{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())},
			}
			fx := game.Tick(config.FixedDelta, in)
			dispatcher.DispatchAll(fx.Events)
		}

		rl.BeginDrawing()
		renderer.Draw(game.Render())
		rl.EndDrawing()
	}
}
