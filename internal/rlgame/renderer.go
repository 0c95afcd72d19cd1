// internal/rlgame/renderer.go
package rlgame

import (
	"fmt"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shoot-balls/internal/app"
	"shoot-balls/internal/config"
	"shoot-balls/internal/utils"
)

// Renderer рисует Frame средствами raylib.
type Renderer struct {
	textures *TextureManager
	font     rl.Font
}

// LoadFont загружает шрифт счёта. Без файла raylib молча берёт встроенный
// шрифт, поэтому файл проверяется заранее.
func LoadFont(path string) (rl.Font, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, fmt.Errorf("%w: font %s: %v", ErrAssetLoad, path, err)
	}
	return rl.LoadFont(path), nil
}

func NewRenderer(textures *TextureManager, font rl.Font) *Renderer {
	return &Renderer{textures: textures, font: font}
}

// Draw вызывается между BeginDrawing и EndDrawing.
func (r *Renderer) Draw(frame app.Frame) {
	rl.ClearBackground(colorToRL(config.BackgroundColor))

	for _, cmd := range frame.Sprites {
		r.drawSprite(cmd)
	}

	label := fmt.Sprintf("Score: %d", frame.Score)
	rl.DrawTextEx(r.font, label, rl.NewVector2(0, 0), config.FontSize, 1, colorToRL(config.ScoreTextColor))
}

func (r *Renderer) drawSprite(cmd app.DrawCommand) {
	texture, ok := r.textures.Get(cmd.Sprite)
	if !ok {
		return
	}
	w := float32(texture.Width)
	h := float32(texture.Height)
	dw := w * float32(cmd.ScaleX)
	dh := h * float32(cmd.ScaleY)

	src := rl.NewRectangle(0, 0, w, h)
	dst := rl.NewRectangle(float32(cmd.X), float32(cmd.Y), dw, dh)
	origin := rl.NewVector2(dw*float32(cmd.OriginX), dh*float32(cmd.OriginY))
	// raylib принимает угол в градусах
	rl.DrawTexturePro(texture, src, dst, origin, float32(utils.RadToDeg(cmd.Rotation)), rl.White)
}

// colorToRL переводит color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
