// internal/ui/score_label.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ScoreLabel рисует "Score: N" в левом верхнем углу.
type ScoreLabel struct {
	X, Y  float64
	face  text.Face
	color color.Color
}

func NewScoreLabel(x, y float64, face text.Face, c color.Color) *ScoreLabel {
	return &ScoreLabel{X: x, Y: y, face: face, color: c}
}

// Text — строка, которая будет нарисована
func (l *ScoreLabel) Text(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func (l *ScoreLabel) Draw(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.color)
	text.Draw(screen, l.Text(score), l.face, op)
}

// DrawCentered рисует s по центру экрана, используется на паузе.
func DrawCentered(screen *ebiten.Image, s string, face text.Face, c color.Color) {
	w, h := text.Measure(s, face, 0)
	bounds := screen.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(bounds.Dx())-w)/2, (float64(bounds.Dy())-h)/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
