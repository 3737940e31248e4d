package main

import (
	"context"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"card-garden/canvas"
	"card-garden/input"
	"card-garden/logger"
	"card-garden/overlay"
	"card-garden/prefs"
	"card-garden/session"
	"card-garden/ui"
)

type Game struct {
	session *session.Orchestrator
	log     *logger.Logger
	face    font.Face
	art     *artCache
	started time.Time

	screenWidth  int
	screenHeight int
	cardRects    []canvas.Rect

	// Sub-systems
	input *input.InputSystem
	ui    *ui.UISystem

	screenshotRequested bool
}

func NewGame(o *session.Orchestrator, face font.Face, log *logger.Logger) *Game {
	g := &Game{
		session: o,
		log:     log.With("component", "game"),
		face:    face,
		art:     newArtCache(log),
		started: time.Now(),
	}
	g.input = input.NewInputSystem(g)
	g.ui = ui.NewUISystem(g.fontFace, g.screenSize, DrawTextLines,
		&ui.Button{ID: session.ThemeID, OnClick: g.ToggleTheme},
		&ui.Button{ID: session.AudioID, OnClick: g.ToggleAudio},
		&ui.Button{ID: session.ResetID, Label: "Reset", OnClick: g.ResetAll},
	)
	g.refreshLabels()
	return g
}

func (g *Game) fontFace() font.Face { return g.face }

func (g *Game) screenSize() (int, int) { return g.screenWidth, g.screenHeight }

func (g *Game) palette() Palette { return PaletteFor(g.session.Context().Theme) }

func (g *Game) Update() error {
	g.input.Update()
	g.session.Tick(time.Now())
	g.refreshLabels()
	return nil
}

func (g *Game) refreshLabels() {
	ctx := g.session.Context()
	if ctx.Theme == prefs.Dark {
		g.ui.SetLabel(session.ThemeID, "Theme: dark")
	} else {
		g.ui.SetLabel(session.ThemeID, "Theme: pastel")
	}
	switch {
	case ctx.AudioOn && g.session.AudioPending():
		g.ui.SetLabel(session.AudioID, "Audio: ...")
	case ctx.AudioOn:
		g.ui.SetLabel(session.AudioID, "Audio: on")
	default:
		g.ui.SetLabel(session.AudioID, "Audio: off")
	}
	if msg, ok := g.session.Status(); ok {
		g.ui.Toast.Set(msg)
	} else {
		g.ui.Toast.Clear()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.palette()
	now := time.Now()
	canvas.DrawBackdrop(screen, g.screenWidth, g.screenHeight, pal.Backdrop, now.Sub(g.started).Seconds())
	DrawTextLines(screen, g.face, TitleText, ui.Margin, ui.Margin+8, pal.Ink)

	focused := g.session.Focused()
	deck := g.session.Deck()
	for i, r := range g.cardRects {
		c, err := deck.Card(i)
		if err != nil {
			continue
		}
		g.drawCard(screen, c, r, pal, now, i == g.input.Hover, focused == session.CardID(i))
	}

	g.ui.Draw(screen, pal.Button, focused)
	g.drawOverlay(screen, pal, focused)
	g.ui.Toast.Draw(screen, g.screenSize, g.fontFace, DrawTextLines, pal.ToastBg, pal.ToastFg)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(screen)
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	f, err := os.Create(ScreenshotFile)
	if err != nil {
		g.log.Error(err, "screenshot")
		return
	}
	defer f.Close()
	if err := png.Encode(f, screen); err != nil {
		g.log.Error(err, "screenshot")
		return
	}
	g.log.With("file", ScreenshotFile).Info("screenshot saved")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight || g.cardRects == nil {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		top := float64(g.ui.Bottom()) + CardGap
		area := canvas.Rect{
			X: CardGap,
			Y: top,
			W: float64(outsideWidth) - 2*CardGap,
			H: float64(outsideHeight) - top - CardGap - 40,
		}
		g.cardRects = canvas.Grid(g.session.Deck().Len(), area, CardWidth, CardHeight, CardGap)
	}
	return outsideWidth, outsideHeight
}

// --- input.Host ---

func (g *Game) CardAt(x, y int) (int, bool) {
	for i, r := range g.cardRects {
		if r.Contains(float64(x), float64(y)) {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) ControlAt(x, y int) (string, bool) {
	if g.session.Overlay().IsOpen() {
		for _, b := range g.overlayButtons() {
			if b.IsMouseOver(x, y) {
				return b.ID, true
			}
		}
		return "", false
	}
	if b := g.ui.ButtonAt(x, y); b != nil {
		return b.ID, true
	}
	return "", false
}

func (g *Game) OverlayOpen() bool { return g.session.Overlay().IsOpen() }

func (g *Game) InsideOverlay(x, y int) bool {
	return g.overlayRect().Contains(float64(x), float64(y))
}

func (g *Game) Activate(i int) {
	if err := g.session.Activate(i); err != nil {
		g.log.With("card", i).Error(err, "activate")
	}
}

func (g *Game) Press(id string) {
	switch id {
	case overlay.CloseID:
		g.session.CloseOverlay()
	case overlay.AgainID:
		g.session.ResetAll()
	default:
		g.ui.Press(id)
	}
}

func (g *Game) Confirm() {
	if err := g.session.Confirm(context.Background()); err != nil {
		g.log.Error(err, "confirm")
	}
}

func (g *Game) FocusNext()         { g.session.FocusNext() }
func (g *Game) FocusPrev()         { g.session.FocusPrev() }
func (g *Game) Dismiss()           { g.session.CloseOverlay() }
func (g *Game) ToggleTheme()       { g.session.ToggleTheme() }
func (g *Game) ResetAll()          { g.session.ResetAll() }
func (g *Game) RequestScreenshot() { g.screenshotRequested = true }

func (g *Game) ToggleAudio() {
	if err := g.session.ToggleAudio(context.Background()); err != nil {
		g.log.Error(err, "toggle audio")
	}
}
