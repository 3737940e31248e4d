package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"card-garden/canvas"
	"card-garden/overlay"
	"card-garden/ui"
)

// overlayRect is the modal panel, centred and shrunk to fit small windows.
func (g *Game) overlayRect() canvas.Rect {
	w := math.Min(OverlayWidth, float64(g.screenWidth)-2*CardGap)
	h := math.Min(OverlayHeight, float64(g.screenHeight)-2*CardGap)
	return canvas.Rect{
		X: (float64(g.screenWidth) - w) / 2,
		Y: (float64(g.screenHeight) - h) / 2,
		W: w,
		H: h,
	}
}

// overlayButtons are the panel's controls, in focus order.
func (g *Game) overlayButtons() []*ui.Button {
	r := g.overlayRect()
	y := float32(r.Y + r.H - CardPadding - OverlayButtonH)
	cx := float32(r.X + r.W/2)
	return []*ui.Button{
		{ID: overlay.CloseID, Label: "Close", X: cx - OverlayButtonWidth - 6, Y: y, W: OverlayButtonWidth, H: OverlayButtonH},
		{ID: overlay.AgainID, Label: "Again", X: cx + 6, Y: y, W: OverlayButtonWidth, H: OverlayButtonH},
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, pal Palette, focused string) {
	surface, ok := g.session.Overlay().Displayed()
	if !ok {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(g.screenWidth), float32(g.screenHeight), pal.Scrim, false)

	r := g.overlayRect()
	vector.DrawFilledRect(screen, float32(r.X+ShadowOffset), float32(r.Y+ShadowOffset), float32(r.W), float32(r.H), pal.Shadow, true)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), pal.Panel, true)

	cx := int(r.X + r.W/2)
	y := int(r.Y + CardPadding)
	DrawTextCentered(screen, g.face, []string{surface.Content.Label}, cx, y, pal.InkSoft)
	y += 28

	buttonsTop := int(r.Y+r.H) - int(CardPadding+OverlayButtonH)
	size := min(OverlayFlowerSize, int(r.W)-2*int(CardPadding), buttonsTop-y-80)
	if size > 0 {
		if img := g.art.flower(surface.Illustration, OverlayFlowerSize); img != nil {
			op := &ebiten.DrawImageOptions{}
			s := float64(size) / float64(OverlayFlowerSize)
			op.GeoM.Scale(s, s)
			op.GeoM.Translate(float64(cx-size/2), float64(y))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
		y += size + 12
	}

	lines := WrapText(g.face, surface.Content.Message, int(r.W)-4*int(CardPadding))
	DrawTextCentered(screen, g.face, lines, cx, y, pal.Ink)

	mx, my := ebiten.CursorPosition()
	for _, b := range g.overlayButtons() {
		b.Draw(screen, g.fontFace, DrawTextLines, pal.Button, b.IsMouseOver(mx, my), b.ID == focused)
	}
}
