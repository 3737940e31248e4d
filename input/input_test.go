package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHost struct {
	open     bool
	cards    map[[2]int]int
	controls map[[2]int]string
	panel    bool

	calls []string
}

func (h *fakeHost) CardAt(x, y int) (int, bool) {
	i, ok := h.cards[[2]int{x, y}]
	return i, ok
}

func (h *fakeHost) ControlAt(x, y int) (string, bool) {
	id, ok := h.controls[[2]int{x, y}]
	return id, ok
}

func (h *fakeHost) OverlayOpen() bool           { return h.open }
func (h *fakeHost) InsideOverlay(x, y int) bool { return h.panel }
func (h *fakeHost) Activate(i int)              { h.calls = append(h.calls, "activate") }
func (h *fakeHost) Press(id string)             { h.calls = append(h.calls, "press:"+id) }
func (h *fakeHost) Confirm()                    { h.calls = append(h.calls, "confirm") }
func (h *fakeHost) FocusNext()                  { h.calls = append(h.calls, "next") }
func (h *fakeHost) FocusPrev()                  { h.calls = append(h.calls, "prev") }
func (h *fakeHost) Dismiss()                    { h.calls = append(h.calls, "dismiss") }
func (h *fakeHost) ToggleTheme()                { h.calls = append(h.calls, "theme") }
func (h *fakeHost) ToggleAudio()                { h.calls = append(h.calls, "audio") }
func (h *fakeHost) ResetAll()                   { h.calls = append(h.calls, "reset") }
func (h *fakeHost) RequestScreenshot()          { h.calls = append(h.calls, "screenshot") }

func TestClickOnCardActivates(t *testing.T) {
	h := &fakeHost{cards: map[[2]int]int{{10, 10}: 2}}
	is := NewInputSystem(h)

	is.Dispatch(Frame{Click: true, X: 10, Y: 10, Cursor: [2]int{10, 10}})
	assert.Equal(t, []string{"activate"}, h.calls)
	assert.Equal(t, 2, is.Hover)
}

func TestClickOutsideOverlayDismisses(t *testing.T) {
	h := &fakeHost{open: true, cards: map[[2]int]int{{10, 10}: 0}}
	is := NewInputSystem(h)

	is.Dispatch(Frame{Click: true, X: 10, Y: 10})
	assert.Equal(t, []string{"dismiss"}, h.calls, "cards under the backdrop are not reachable")
	assert.Equal(t, -1, is.Hover)
}

func TestClickInsideOverlayPanelDoesNothing(t *testing.T) {
	h := &fakeHost{open: true, panel: true}
	NewInputSystem(h).Dispatch(Frame{Click: true, X: 5, Y: 5})
	assert.Empty(t, h.calls)
}

func TestClickOnControlPresses(t *testing.T) {
	h := &fakeHost{open: true, controls: map[[2]int]string{{1, 1}: "overlay.close"}}
	NewInputSystem(h).Dispatch(Frame{Click: true, X: 1, Y: 1})
	assert.Equal(t, []string{"press:overlay.close"}, h.calls)
}

func TestEscapeOnlyWhileOpen(t *testing.T) {
	h := &fakeHost{}
	is := NewInputSystem(h)
	is.Dispatch(Frame{Keys: []Key{KeyDismiss}})
	assert.Empty(t, h.calls)

	h.open = true
	is.Dispatch(Frame{Keys: []Key{KeyDismiss}})
	assert.Equal(t, []string{"dismiss"}, h.calls)
}

func TestKeysMapToIntents(t *testing.T) {
	h := &fakeHost{}
	NewInputSystem(h).Dispatch(Frame{Keys: []Key{
		KeyFocusNext, KeyFocusPrev, KeyConfirm, KeyTheme, KeyAudio, KeyReset, KeyScreenshot,
	}})
	assert.Equal(t, []string{"next", "prev", "confirm", "theme", "audio", "reset", "screenshot"}, h.calls)
}
