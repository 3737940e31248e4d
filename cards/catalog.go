package cards

import (
	"errors"
	"math/rand/v2"
)

var ErrEmptyCatalog = errors.New("cards: message catalog is empty")

// Catalog is the ordered, immutable set of messages a card may reveal.
type Catalog struct {
	messages []string
}

// NewCatalog copies messages into a catalog. An empty list is rejected.
func NewCatalog(messages []string) (*Catalog, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{messages: append([]string(nil), messages...)}, nil
}

// DefaultCatalog returns the built-in messages.
func DefaultCatalog() *Catalog {
	return &Catalog{messages: append([]string(nil), defaultMessages...)}
}

func (c *Catalog) Len() int { return len(c.messages) }

func (c *Catalog) At(i int) string { return c.messages[i] }

// Messages returns a copy of the catalog contents.
func (c *Catalog) Messages() []string {
	return append([]string(nil), c.messages...)
}

func (c *Catalog) Contains(msg string) bool {
	for _, m := range c.messages {
		if m == msg {
			return true
		}
	}
	return false
}

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

// RandomPicker draws uniformly from math/rand/v2's global source.
type RandomPicker struct{}

func (RandomPicker) Pick(n int) int { return rand.IntN(n) }

var defaultMessages = []string{
	"In this lifetime and the next 12 reincarnations, I would still choose you as my best friend. No refunds. 💖",
	"If anyone hurts you, I will become the dramatic background music in their downfall arc. 🎻✨",
	"You are not just a friend. You are a whole emotionally significant subplot. 📖💞",
	"When historians study greatness, they will find you. And I’ll be in the footnotes screaming ‘THAT’S MY FRIEND.’ 🫶",
	"Your existence alone has raised the global serotonin average. You’re welcome, world. 🌍💗",
	"If life was a dramatic slow-motion scene, you’d be walking in with wind in your hair and sparkles behind you. ✨",
	"You deserve love, loyalty, good lighting, and unlimited snacks. In that order. 💅🍿",
	"If being iconic was a crime, you’d be serving a life sentence. 💖🚨",
	"Even on your worst day, you’re still someone’s favorite person. (Spoiler: it’s me.) 💞",
	"You don’t just glow. You radiate ‘main character who wins in the final episode’ energy. 🌸🔥",
	"I would write a 200-chapter epic about how cool you are. And yes, it would have fan art. 🎨💘",
	"If friendship had a leaderboard, you’d be permanently pinned at #1. No competition. 🏆✨",
	"You are the plot twist that made my life better. 💗",
	"Should the world ever doubt you, I will appear dramatically and object. LOUDLY. 🎤💥",
	"In case no one told you today: you are dangerously lovable and I fully support it. 💞",
}
