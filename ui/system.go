package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Toolbar geometry.
const (
	ButtonWidth  = 120
	ButtonHeight = 34
	ButtonGap    = 10
	Margin       = 16
)

// UISystem lays out a right-aligned row of buttons along the top edge and
// owns the status toast.
type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
	Toast         *Toast
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText DrawTextFunc, buttons ...*Button) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Toast:         &Toast{},
	}
	for _, b := range buttons {
		b.W, b.H = ButtonWidth, ButtonHeight
		ui.buttons = append(ui.buttons, b)
	}
	ui.updateButtonPositions()
	return ui
}

func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w - Margin)
	for i := len(ui.buttons) - 1; i >= 0; i-- {
		b := ui.buttons[i]
		x -= b.W
		b.X = x
		b.Y = Margin
		x -= ButtonGap
	}
}

// SetLabel changes the caption of the button with the given id.
func (ui *UISystem) SetLabel(id, label string) {
	if b := ui.Button(id); b != nil {
		b.Label = label
	}
}

func (ui *UISystem) Button(id string) *Button {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// ButtonAt returns the button under the point, or nil.
func (ui *UISystem) ButtonAt(mx, my int) *Button {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return b
		}
	}
	return nil
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	return ui.ButtonAt(mx, my) != nil
}

// Press runs the click handler of the button with the given id.
func (ui *UISystem) Press(id string) bool {
	b := ui.Button(id)
	if b == nil || b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

// Bottom is the y coordinate just below the toolbar.
func (ui *UISystem) Bottom() int {
	return Margin + ButtonHeight
}

func (ui *UISystem) Draw(screen *ebiten.Image, st Style, focused string) {
	ui.updateButtonPositions()
	mx, my := ebiten.CursorPosition()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText, st, b.IsMouseOver(mx, my), b.ID == focused)
	}
}
