package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"card-garden/config"
	"card-garden/logger"
	"card-garden/overlay"
	"card-garden/prefs"
	"card-garden/session"
	"card-garden/telemetry"
)

type silentBackend struct{}

func (b *silentBackend) Start(r io.Reader) error          { return nil }
func (b *silentBackend) Resume(ctx context.Context) error { return nil }
func (b *silentBackend) Close() error                     { return nil }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Prefs.Backend = "memory"
	a := &app{cfg: cfg, log: logger.Nop(), metrics: telemetry.NewMetrics()}
	o, err := a.newSession(&silentBackend{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })

	g := NewGame(o, basicfont.Face7x13, a.log)
	g.Layout(1080, 720)
	return g
}

func centre(t *testing.T, g *Game, i int) (int, int) {
	t.Helper()
	require.Less(t, i, len(g.cardRects))
	x, y := g.cardRects[i].Center()
	return int(x), int(y)
}

func TestLayoutPlacesEveryCardBelowToolbar(t *testing.T) {
	g := newTestGame(t)
	require.Len(t, g.cardRects, 7)
	for i, r := range g.cardRects {
		assert.GreaterOrEqual(t, r.Y, float64(g.ui.Bottom()), "card %d overlaps toolbar", i)
		x, y := centre(t, g, i)
		got, ok := g.CardAt(x, y)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	_, ok := g.CardAt(1, 1)
	assert.False(t, ok)
}

func TestRevealOpensOverlayAndCloseButtonDismisses(t *testing.T) {
	g := newTestGame(t)

	g.Activate(2)
	assert.False(t, g.OverlayOpen(), "overlay waits for the flip to settle")
	g.session.Tick(time.Now().Add(time.Second))
	require.True(t, g.OverlayOpen())

	r := g.overlayRect()
	cx, cy := r.Center()
	assert.True(t, g.InsideOverlay(int(cx), int(cy)))
	assert.False(t, g.InsideOverlay(2, 2))

	buttons := g.overlayButtons()
	require.Len(t, buttons, 2)
	bx, by := int(buttons[0].X+buttons[0].W/2), int(buttons[0].Y+buttons[0].H/2)
	id, ok := g.ControlAt(bx, by)
	require.True(t, ok)
	assert.Equal(t, overlay.CloseID, id)

	g.Press(id)
	assert.False(t, g.OverlayOpen())
	assert.Equal(t, session.CardID(2), g.session.Focused())

	c, err := g.session.Deck().Card(2)
	require.NoError(t, err)
	msg, ok := c.Message()
	require.True(t, ok)
	assert.True(t, g.session.Deck().Catalog().Contains(msg))
}

func TestToolbarControlsHiddenBehindOverlay(t *testing.T) {
	g := newTestGame(t)
	theme := g.ui.Button(session.ThemeID)
	require.NotNil(t, theme)
	tx, ty := int(theme.X+theme.W/2), int(theme.Y+theme.H/2)

	id, ok := g.ControlAt(tx, ty)
	require.True(t, ok)
	assert.Equal(t, session.ThemeID, id)

	g.Activate(0)
	g.session.Tick(time.Now().Add(time.Second))
	require.True(t, g.OverlayOpen())
	_, ok = g.ControlAt(tx, ty)
	assert.False(t, ok)
}

func TestAgainResetsEveryCard(t *testing.T) {
	g := newTestGame(t)
	g.Activate(0)
	g.Activate(4)
	g.session.Tick(time.Now().Add(time.Second))
	require.True(t, g.OverlayOpen())

	g.Press(overlay.AgainID)
	assert.False(t, g.OverlayOpen())
	for i := 0; i < g.session.Deck().Len(); i++ {
		c, err := g.session.Deck().Card(i)
		require.NoError(t, err)
		_, ok := c.Message()
		assert.False(t, ok, "card %d still revealed", i)
	}
}

func TestToolbarLabelsFollowSession(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, "Theme: pastel", g.ui.Button(session.ThemeID).Label)
	assert.Equal(t, "Audio: off", g.ui.Button(session.AudioID).Label)

	g.Press(session.ThemeID)
	g.refreshLabels()
	assert.Equal(t, prefs.Dark, g.session.Context().Theme)
	assert.Equal(t, "Theme: dark", g.ui.Button(session.ThemeID).Label)
	assert.Equal(t, "Theme: dark", g.ui.Toast.Text)

	g.Press(session.AudioID)
	g.refreshLabels()
	assert.True(t, g.session.Context().AudioOn)
	assert.Contains(t, []string{"Audio: ...", "Audio: on"}, g.ui.Button(session.AudioID).Label)
}
