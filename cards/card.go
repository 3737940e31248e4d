package cards

import (
	"fmt"
	"time"

	"card-garden/flower"
)

// DefaultSettle is the pause between a card turning over and its reveal.
const DefaultSettle = 420 * time.Millisecond

// Placeholder is shown on the back face of a card that has not been turned.
const Placeholder = "—"

type Phase int

const (
	Idle Phase = iota
	Flipped
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Flipped:
		return "flipped"
	case Revealed:
		return "revealed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Definition is one of the fixed cards.
type Definition struct {
	ID     int
	Label  string
	Badge  string
	Flower flower.Kind
}

// DefaultDefinitions returns the seven cards in display order.
func DefaultDefinitions() []Definition {
	return []Definition{
		{ID: 1, Label: "Card 1", Badge: "💌", Flower: flower.Peony},
		{ID: 2, Label: "Card 2", Badge: "🎀", Flower: flower.Tulip},
		{ID: 3, Label: "Card 3", Badge: "✨", Flower: flower.Daisy},
		{ID: 4, Label: "Card 4", Badge: "🍓", Flower: flower.Rose},
		{ID: 5, Label: "Card 5", Badge: "🌙", Flower: flower.Lavender},
		{ID: 6, Label: "Card 6", Badge: "🫧", Flower: flower.Sunflower},
		{ID: 7, Label: "Card 7", Badge: "💗", Flower: flower.Lotus},
	}
}

// Back is what the card shows once turned over.
type Back struct {
	Message      string
	Illustration *flower.Illustration
}

// Reveal is what a settled card asks the overlay to show.
type Reveal struct {
	CardID  int
	Label   string
	Flower  flower.Kind
	Message string
}

// Card is the flip/reveal state machine for a single card. It is not safe
// for concurrent use; the game loop owns it.
type Card struct {
	def Definition

	phase    Phase
	message  string
	assigned bool
	back     Back

	flippedAt time.Time
	settleAt  time.Time
}

func NewCard(def Definition) *Card {
	return &Card{def: def, back: Back{Message: Placeholder}}
}

func (c *Card) Definition() Definition { return c.def }
func (c *Card) Phase() Phase           { return c.phase }
func (c *Card) Back() Back             { return c.back }
func (c *Card) FlippedAt() time.Time   { return c.flippedAt }

// Message returns the frozen message, if one has been drawn.
func (c *Card) Message() (string, bool) {
	return c.message, c.assigned
}

// Activate turns an idle card over. The back face is filled at once and the
// reveal becomes due after settle. Activating a card that is not idle does
// nothing and returns false.
func (c *Card) Activate(now time.Time, settle time.Duration, catalog *Catalog, pick Picker) bool {
	if c.phase != Idle {
		return false
	}

	c.phase = Flipped
	if !c.assigned {
		c.message = catalog.At(pick.Pick(catalog.Len()))
		c.assigned = true
	}
	ill := flower.Generate(c.def.Flower)
	c.back = Back{Message: c.message, Illustration: &ill}
	c.flippedAt = now
	c.settleAt = now.Add(settle)
	return true
}

// Settle completes the flip once its deadline has passed. It is a no-op for
// a card that is no longer flipped, which covers a reset during the delay.
func (c *Card) Settle(now time.Time) (Reveal, bool) {
	if c.phase != Flipped || now.Before(c.settleAt) {
		return Reveal{}, false
	}
	c.phase = Revealed
	return Reveal{
		CardID:  c.def.ID,
		Label:   c.def.Label,
		Flower:  c.def.Flower,
		Message: c.message,
	}, true
}

// Reset returns the card to idle and forgets its message.
func (c *Card) Reset() {
	c.phase = Idle
	c.message = ""
	c.assigned = false
	c.back = Back{Message: Placeholder}
	c.flippedAt = time.Time{}
	c.settleAt = time.Time{}
}

// FlipProgress reports how far the turn-over animation has run, from 0
// (front) to 1 (back).
func (c *Card) FlipProgress(now time.Time, settle time.Duration) float64 {
	switch c.phase {
	case Idle:
		return 0
	case Revealed:
		return 1
	}
	if settle <= 0 {
		return 1
	}
	p := float64(now.Sub(c.flippedAt)) / float64(settle)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
