package overlay

import (
	"card-garden/flower"
	"card-garden/logger"
)

// Focus ids of the overlay's own controls.
const (
	CloseID = "overlay.close"
	AgainID = "overlay.again"
)

// Content is what a revealed card puts on the shared surface.
type Content struct {
	Label   string
	Flower  flower.Kind
	Message string
}

// Surface is the rendered overlay: the content plus its illustration.
type Surface struct {
	Content      Content
	Illustration flower.Illustration
}

// Controller drives the single modal surface shared by all cards.
type Controller struct {
	ring *Ring
	log  *logger.Logger

	open      bool
	returnTo  string
	displayed *Surface
}

// NewController returns a closed overlay. Its controls join ring only while
// the overlay is open.
func NewController(ring *Ring, log *logger.Logger) *Controller {
	return &Controller{ring: ring, log: log}
}

// Open shows content and moves focus to the close control. Opening an
// already open overlay replaces what it shows and keeps the focus target
// captured by the first open.
func (c *Controller) Open(content Content) {
	if !c.open {
		c.returnTo = c.ring.Current()
		c.ring.Add(CloseID)
		c.ring.Add(AgainID)
	}

	c.displayed = &Surface{
		Content:      content,
		Illustration: flower.Generate(content.Flower),
	}
	c.open = true

	c.ring.Release()
	c.ring.Trap(CloseID, AgainID)
	c.ring.Focus(CloseID)

	c.log.WithFields(map[string]any{
		"label":  content.Label,
		"flower": content.Flower.String(),
	}).Debug("overlay opened")
}

// Close hides the overlay and gives focus back to whatever held it before
// the overlay opened. It reports whether the overlay was open.
func (c *Controller) Close() bool {
	if !c.open {
		return false
	}

	c.open = false
	c.displayed = nil
	c.ring.Release()
	c.ring.Remove(CloseID)
	c.ring.Remove(AgainID)

	target := c.returnTo
	c.returnTo = ""
	switch {
	case target == "":
		c.ring.Blur()
	case c.ring.Focus(target):
	default:
		c.ring.Blur()
		c.log.With("target", target).Debug("focus return target gone, skipping restore")
	}
	return true
}

func (c *Controller) IsOpen() bool { return c.open }

// Hidden is the assistive-technology view of the open flag.
func (c *Controller) Hidden() bool { return !c.open }

// Displayed returns the surface currently shown.
func (c *Controller) Displayed() (Surface, bool) {
	if c.displayed == nil {
		return Surface{}, false
	}
	return *c.displayed, true
}

// ReturnTarget is the focus id that Close will restore.
func (c *Controller) ReturnTarget() string { return c.returnTo }
