package session

import (
	"time"

	"card-garden/logger"
	"card-garden/prefs"
)

// StatusTTL is how long a status line stays on screen.
const StatusTTL = 2500 * time.Millisecond

// Context is the per-session state shared by the toolbar, the cards and the
// overlay. It is created from the preference store and simply dropped at exit.
type Context struct {
	Theme prefs.Theme
	// AudioOn is the stored preference. Audible reports whether the pad is
	// actually playing, which can lag or, after a denial, disagree.
	AudioOn bool
	Audible bool

	status      string
	statusUntil time.Time
}

// Load builds a Context from the store, falling back to pastel and silence.
func Load(store prefs.Store, log *logger.Logger) *Context {
	p := prefs.Load(store, log)
	return &Context{Theme: p.Theme, AudioOn: p.AudioOn}
}

// Preferences returns the persisted part of the context.
func (c *Context) Preferences() prefs.Preferences {
	return prefs.Preferences{Theme: c.Theme, AudioOn: c.AudioOn}
}

func (c *Context) setStatus(msg string, now time.Time) {
	c.status = msg
	c.statusUntil = now.Add(StatusTTL)
}

// Status returns the current status line while it is still fresh.
func (c *Context) Status(now time.Time) (string, bool) {
	if c.status == "" || !now.Before(c.statusUntil) {
		return "", false
	}
	return c.status, true
}
