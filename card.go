package main

import (
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"card-garden/canvas"
	"card-garden/cards"
)

// drawCard draws one card. While a card is flipping its face is rendered
// offscreen and squeezed horizontally by |cos(πp)|, switching from front to
// back at the halfway point.
func (g *Game) drawCard(screen *ebiten.Image, c *cards.Card, r canvas.Rect, pal Palette, now time.Time, hovered, focused bool) {
	p := c.FlipProgress(now, g.session.Deck().Settle())
	squeeze := math.Abs(math.Cos(math.Pi * p))
	showBack := p >= 0.5

	y := r.Y
	if hovered && c.Phase() == cards.Idle {
		y -= HoverLift
	}
	w := r.W * squeeze
	x := r.X + (r.W-w)/2

	vector.DrawFilledRect(screen, float32(x+ShadowOffset), float32(y+ShadowOffset), float32(w), float32(r.H), pal.Shadow, true)

	face := g.art.scratch(c.Definition().ID, int(r.W), int(r.H))
	if showBack {
		g.drawBack(face, c, pal)
	} else {
		g.drawFront(face, c, pal, hovered)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(squeeze, 1)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(face, op)

	if focused {
		vector.StrokeRect(screen,
			float32(r.X-FocusOffset), float32(y-FocusOffset),
			float32(r.W+2*FocusOffset), float32(r.H+2*FocusOffset),
			FocusThickness, pal.Accent, true)
	}
}

func (g *Game) drawFront(dst *ebiten.Image, c *cards.Card, pal Palette, hovered bool) {
	body := pal.CardFront
	if hovered {
		body = pal.CardHover
	}
	dst.Fill(body)

	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	def := c.Definition()

	cx := float32(w) / 2
	cy := float32(h) * 0.4
	vector.DrawFilledCircle(dst, cx, cy, BadgeRadius*1.6, pal.Badge, true)
	vector.StrokeCircle(dst, cx, cy, BadgeRadius*1.6+6, 2, pal.Accent, true)
	DrawTextCentered(dst, g.face, []string{badgeText(g.face, def)}, int(cx), int(cy)-8, pal.Ink)

	DrawTextCentered(dst, g.face, []string{def.Label}, w/2, int(CardPadding), pal.Ink)
	DrawTextCentered(dst, g.face, []string{HintText}, w/2, h-int(CardPadding)-16, pal.InkSoft)
}

func (g *Game) drawBack(dst *ebiten.Image, c *cards.Card, pal Palette) {
	dst.Fill(pal.CardBack)

	w := dst.Bounds().Dx()
	back := c.Back()

	DrawTextCentered(dst, g.face, []string{c.Definition().Label}, w/2, int(CardPadding), pal.InkSoft)

	size := min(MiniFlowerSize, w-2*int(CardPadding))
	top := int(CardPadding) + 24
	if back.Illustration != nil && size > 0 {
		if img := g.art.flower(*back.Illustration, MiniFlowerSize); img != nil {
			op := &ebiten.DrawImageOptions{}
			s := float64(size) / float64(MiniFlowerSize)
			op.GeoM.Scale(s, s)
			op.GeoM.Translate(float64(w-size)/2, float64(top))
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(img, op)
		}
	}

	lines := WrapText(g.face, back.Message, w-2*int(CardPadding))
	DrawTextCentered(dst, g.face, lines, w/2, top+size+10, pal.Ink)
}

// badgeText is the card's badge glyph, or its number when face cannot draw
// the glyph.
func badgeText(face font.Face, def cards.Definition) string {
	if def.Badge != "" && hasGlyphs(face, def.Badge) {
		return def.Badge
	}
	return strconv.Itoa(def.ID)
}
