package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a discrete keyboard intent.
type Key int

const (
	KeyConfirm Key = iota
	KeyFocusNext
	KeyFocusPrev
	KeyDismiss
	KeyTheme
	KeyAudio
	KeyReset
	KeyScreenshot
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	// CardAt returns the index of the card under the screen point.
	CardAt(x, y int) (int, bool)
	// ControlAt returns the focus id of the clickable control under the
	// point, considering only the controls currently reachable.
	ControlAt(x, y int) (string, bool)
	OverlayOpen() bool
	// InsideOverlay reports whether the point falls on the overlay panel.
	InsideOverlay(x, y int) bool

	Activate(i int)
	Press(id string)
	Confirm()
	FocusNext()
	FocusPrev()
	Dismiss()
	ToggleTheme()
	ToggleAudio()
	ResetAll()
	RequestScreenshot()
}

// Frame is the input gathered during one tick.
type Frame struct {
	Click  bool
	X, Y   int
	Keys   []Key
	Cursor [2]int
}

type InputSystem struct {
	host Host

	// Hover is the card under the cursor after the last update, or -1.
	Hover int
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h, Hover: -1}
}

// Update polls Ebitengine and dispatches the result.
func (is *InputSystem) Update() {
	is.Dispatch(Poll())
}

// Poll reads this tick's key presses and clicks.
func Poll() Frame {
	var f Frame
	mx, my := ebiten.CursorPosition()
	f.Cursor = [2]int{mx, my}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Click = true
		f.X, f.Y = mx, my
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		f.Click = true
		f.X, f.Y = ebiten.TouchPosition(ids[0])
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace:
			f.Keys = append(f.Keys, KeyConfirm)
		case ebiten.KeyTab:
			if shift {
				f.Keys = append(f.Keys, KeyFocusPrev)
			} else {
				f.Keys = append(f.Keys, KeyFocusNext)
			}
		case ebiten.KeyEscape:
			f.Keys = append(f.Keys, KeyDismiss)
		case ebiten.KeyT:
			f.Keys = append(f.Keys, KeyTheme)
		case ebiten.KeyM:
			f.Keys = append(f.Keys, KeyAudio)
		case ebiten.KeyR:
			f.Keys = append(f.Keys, KeyReset)
		case ebiten.KeyF12:
			f.Keys = append(f.Keys, KeyScreenshot)
		}
	}
	return f
}

// Dispatch turns one frame of input into host intents.
func (is *InputSystem) Dispatch(f Frame) {
	for _, k := range f.Keys {
		is.handleKey(k)
	}
	if f.Click {
		is.handleClick(f.X, f.Y)
	}

	is.Hover = -1
	if !is.host.OverlayOpen() {
		if i, ok := is.host.CardAt(f.Cursor[0], f.Cursor[1]); ok {
			is.Hover = i
		}
	}
}

func (is *InputSystem) handleKey(k Key) {
	switch k {
	case KeyScreenshot:
		is.host.RequestScreenshot()
	case KeyDismiss:
		// Escape only means something while the overlay is up.
		if is.host.OverlayOpen() {
			is.host.Dismiss()
		}
	case KeyFocusNext:
		is.host.FocusNext()
	case KeyFocusPrev:
		is.host.FocusPrev()
	case KeyConfirm:
		is.host.Confirm()
	case KeyTheme:
		is.host.ToggleTheme()
	case KeyAudio:
		is.host.ToggleAudio()
	case KeyReset:
		is.host.ResetAll()
	}
}

func (is *InputSystem) handleClick(x, y int) {
	if id, ok := is.host.ControlAt(x, y); ok {
		is.host.Press(id)
		return
	}
	if is.host.OverlayOpen() {
		if !is.host.InsideOverlay(x, y) {
			is.host.Dismiss()
		}
		return
	}
	if i, ok := is.host.CardAt(x, y); ok {
		is.host.Activate(i)
	}
}
