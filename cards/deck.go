package cards

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoSuchCard = errors.New("cards: no such card")

// Deck holds the cards in display order plus what they draw from.
type Deck struct {
	cards   []*Card
	catalog *Catalog
	picker  Picker
	settle  time.Duration
}

type Option func(*Deck)

// WithPicker replaces the random message picker.
func WithPicker(p Picker) Option {
	return func(d *Deck) {
		d.picker = p
	}
}

// WithSettle sets the flip-settle duration.
func WithSettle(settle time.Duration) Option {
	return func(d *Deck) {
		d.settle = settle
	}
}

func NewDeck(defs []Definition, catalog *Catalog, opts ...Option) (*Deck, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("cards: deck needs at least one definition")
	}

	d := &Deck{
		catalog: catalog,
		picker:  RandomPicker{},
		settle:  DefaultSettle,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.settle < 0 {
		return nil, fmt.Errorf("cards: settle duration %s is negative", d.settle)
	}

	for _, def := range defs {
		d.cards = append(d.cards, NewCard(def))
	}
	return d, nil
}

func (d *Deck) Len() int              { return len(d.cards) }
func (d *Deck) Settle() time.Duration { return d.settle }
func (d *Deck) Catalog() *Catalog     { return d.catalog }

func (d *Deck) Card(i int) (*Card, error) {
	if i < 0 || i >= len(d.cards) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoSuchCard, i, len(d.cards))
	}
	return d.cards[i], nil
}

// Activate turns card i over. It reports whether anything changed.
func (d *Deck) Activate(i int, now time.Time) (bool, error) {
	c, err := d.Card(i)
	if err != nil {
		return false, err
	}
	return c.Activate(now, d.settle, d.catalog, d.picker), nil
}

// Tick settles every card whose delay has elapsed and returns their reveals
// in display order.
func (d *Deck) Tick(now time.Time) []Reveal {
	var out []Reveal
	for _, c := range d.cards {
		if r, ok := c.Settle(now); ok {
			out = append(out, r)
		}
	}
	return out
}

func (d *Deck) Reset(i int) error {
	c, err := d.Card(i)
	if err != nil {
		return err
	}
	c.Reset()
	return nil
}

func (d *Deck) ResetAll() {
	for _, c := range d.cards {
		c.Reset()
	}
}

// Pending reports whether any card is waiting out its settle delay.
func (d *Deck) Pending() bool {
	for _, c := range d.cards {
		if c.phase == Flipped {
			return true
		}
	}
	return false
}
