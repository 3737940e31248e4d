package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// Style is the palette a button is drawn with.
type Style struct {
	Fill  color.Color
	Hover color.Color
	Text  color.Color
	Focus color.Color
}

type Button struct {
	ID      string
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button, outlined when it holds keyboard focus.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc, st Style, hovered, focused bool) {
	fill := st.Fill
	if hovered {
		fill = st.Hover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, fill, true)
	if focused {
		vector.StrokeRect(screen, b.X-3, b.Y-3, b.W+6, b.H+6, 2, st.Focus, true)
	}
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	tw := font.MeasureString(face, b.Label).Ceil()
	lh := face.Metrics().Height.Ceil()
	drawText(screen, face, b.Label, int(b.X)+(int(b.W)-tw)/2, int(b.Y)+(int(b.H)-lh)/2, st.Text)
}
