package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Toast is a one-line status message pinned to the bottom of the window.
type Toast struct {
	Text string
}

func (t *Toast) Set(msg string) {
	t.Text = msg
}

func (t *Toast) Clear() {
	t.Text = ""
}

func (t *Toast) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText DrawTextFunc, bg, fg color.Color) {
	if t == nil || t.Text == "" || getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	w, h := getScreenSize()
	tw := font.MeasureString(face, t.Text).Ceil()
	lh := face.Metrics().Height.Ceil()

	pw, ph := tw+32, lh+16
	x := (w - pw) / 2
	y := h - ph - 18
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), bg, true)
	drawText(screen, face, t.Text, x+16, y+8, fg)
}
