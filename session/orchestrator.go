package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"card-garden/cards"
	"card-garden/logger"
	"card-garden/overlay"
	"card-garden/prefs"
)

// Focus ids of the toolbar controls. Cards use CardID.
const (
	ThemeID = "toolbar.theme"
	AudioID = "toolbar.audio"
	ResetID = "toolbar.reset"
)

// DefaultAudioTimeout bounds how long a start request waits for the platform.
const DefaultAudioTimeout = 5 * time.Second

// CardID is the focus id of the card at index i.
func CardID(i int) string { return "card." + strconv.Itoa(i+1) }

// CardIndex reverses CardID.
func CardIndex(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "card.")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

// AudioEngine is the part of ambient.Engine the session drives.
type AudioEngine interface {
	EnsureRunning(ctx context.Context) error
	SetEnabled(on bool)
	Close() error
}

type Clock func() time.Time

// Orchestrator turns user intents into card, overlay, audio and preference
// changes. It is driven from a single goroutine; only the audio start
// request runs elsewhere and reports back through Tick.
type Orchestrator struct {
	ctx     *Context
	store   prefs.Store
	deck    *cards.Deck
	ring    *overlay.Ring
	overlay *overlay.Controller
	audio   AudioEngine
	rec     Recorder
	log     *logger.Logger
	clock   Clock

	audioTimeout time.Duration
	awaitGesture bool
	audioResult  chan error
}

type Option func(*Orchestrator)

func WithClock(c Clock) Option {
	return func(o *Orchestrator) {
		o.clock = c
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) {
		o.rec = r
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(o *Orchestrator) {
		o.log = l
	}
}

func WithAudioTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.audioTimeout = d
	}
}

// New loads the session context from store and registers every card and
// toolbar control with the focus ring. A stored audioOn=true is honoured on
// the first user gesture, not at startup.
func New(deck *cards.Deck, store prefs.Store, audio AudioEngine, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:        store,
		deck:         deck,
		audio:        audio,
		rec:          nopRecorder{},
		clock:        time.Now,
		audioTimeout: DefaultAudioTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With("component", "session")
	o.ctx = Load(store, o.log)

	ids := make([]string, 0, deck.Len()+3)
	for i := range deck.Len() {
		ids = append(ids, CardID(i))
	}
	ids = append(ids, ThemeID, AudioID, ResetID)
	o.ring = overlay.NewRing(ids...)
	o.overlay = overlay.NewController(o.ring, o.log)
	o.awaitGesture = o.ctx.AudioOn
	return o
}

func (o *Orchestrator) Context() *Context              { return o.ctx }
func (o *Orchestrator) Deck() *cards.Deck              { return o.deck }
func (o *Orchestrator) Overlay() *overlay.Controller   { return o.overlay }
func (o *Orchestrator) Focused() string                { return o.ring.Current() }
func (o *Orchestrator) Now() time.Time                 { return o.clock() }
func (o *Orchestrator) AudioPending() bool             { return o.audioResult != nil }
func (o *Orchestrator) Status() (string, bool)         { return o.ctx.Status(o.clock()) }
func (o *Orchestrator) Preferences() prefs.Preferences { return o.ctx.Preferences() }

// Activate flips card i. Activating a card that is not idle changes nothing.
func (o *Orchestrator) Activate(i int) error {
	c, err := o.deck.Card(i)
	if err != nil {
		return err
	}
	o.gesture()
	o.ring.Focus(CardID(i))

	flipped, err := o.deck.Activate(i, o.clock())
	if err != nil {
		return err
	}
	if flipped {
		kind := c.Definition().Flower
		o.rec.CardActivated(kind)
		o.log.WithFields(map[string]any{"card": c.Definition().ID, "flower": kind.String()}).Debug("card flipped")
	}
	return nil
}

// Tick opens the overlay for every card whose settle delay has passed and
// picks up the outcome of a pending audio start.
func (o *Orchestrator) Tick(now time.Time) {
	o.collectAudio(now)
	for _, r := range o.deck.Tick(now) {
		o.overlay.Open(overlay.Content{Label: r.Label, Flower: r.Flower, Message: r.Message})
		o.rec.OverlayOpened(r.Flower)
	}
}

func (o *Orchestrator) ToggleTheme() {
	o.gesture()
	o.ctx.Theme = o.ctx.Theme.Toggle()
	if err := prefs.SaveTheme(o.store, o.ctx.Theme); err != nil {
		o.log.With("theme", string(o.ctx.Theme)).Error(err, "theme preference not saved")
	}
	o.rec.ThemeChanged(o.ctx.Theme)
	o.ctx.setStatus("Theme: "+string(o.ctx.Theme), o.clock())
}

// ToggleAudio flips and stores the audio preference. Turning audio on asks
// the engine to start in the background; Tick applies the result. The
// returned error only reports a failed preference write.
func (o *Orchestrator) ToggleAudio(ctx context.Context) error {
	o.awaitGesture = false
	on := !o.ctx.AudioOn
	o.ctx.AudioOn = on

	var saveErr error
	if err := prefs.SaveAudio(o.store, on); err != nil {
		o.log.Error(err, "audio preference not saved")
		saveErr = fmt.Errorf("session: save audio preference: %w", err)
	}
	o.rec.AudioChanged(on)

	now := o.clock()
	if on {
		o.ctx.setStatus("Audio: starting", now)
		o.startAudio(ctx)
		return saveErr
	}
	o.audio.SetEnabled(false)
	o.ctx.Audible = false
	o.ctx.setStatus("Audio off", now)
	return saveErr
}

// ResetAll returns every card to idle and closes the overlay.
func (o *Orchestrator) ResetAll() {
	o.gesture()
	o.deck.ResetAll()
	o.overlay.Close()
	o.rec.Reset()
	o.log.Debug("all cards reset")
}

// CloseOverlay reports whether an open overlay was closed.
func (o *Orchestrator) CloseOverlay() bool {
	return o.overlay.Close()
}

func (o *Orchestrator) FocusNext() string { return o.ring.Next() }
func (o *Orchestrator) FocusPrev() string { return o.ring.Prev() }

// Focus moves focus to id if the ring currently accepts it.
func (o *Orchestrator) Focus(id string) bool { return o.ring.Focus(id) }

// Confirm activates whatever holds focus.
func (o *Orchestrator) Confirm(ctx context.Context) error {
	id := o.ring.Current()
	switch id {
	case "":
		return nil
	case ThemeID:
		o.ToggleTheme()
		return nil
	case AudioID:
		return o.ToggleAudio(ctx)
	case ResetID, overlay.AgainID:
		o.ResetAll()
		return nil
	case overlay.CloseID:
		o.CloseOverlay()
		return nil
	}
	if i, ok := CardIndex(id); ok {
		return o.Activate(i)
	}
	o.log.With("focus", id).Warn("confirm on unknown control")
	return nil
}

// Close releases the audio engine.
func (o *Orchestrator) Close() error {
	return o.audio.Close()
}

func (o *Orchestrator) gesture() {
	if !o.awaitGesture {
		return
	}
	o.awaitGesture = false
	o.startAudio(context.Background())
}

func (o *Orchestrator) startAudio(ctx context.Context) {
	if o.audioResult != nil {
		return
	}
	ch := make(chan error, 1)
	o.audioResult = ch

	ctx, cancel := context.WithTimeout(ctx, o.audioTimeout)
	go func() {
		defer cancel()
		ch <- o.audio.EnsureRunning(ctx)
	}()
}

func (o *Orchestrator) collectAudio(now time.Time) {
	if o.audioResult == nil {
		return
	}
	var err error
	select {
	case err = <-o.audioResult:
		o.audioResult = nil
	default:
		return
	}

	if err != nil {
		o.ctx.Audible = false
		o.rec.AudioFailed()
		o.log.Error(err, "audio unavailable, staying silent")
		o.ctx.setStatus("Audio unavailable", now)
		return
	}
	if !o.ctx.AudioOn {
		return
	}
	o.audio.SetEnabled(true)
	o.ctx.Audible = true
	o.ctx.setStatus("Audio on", now)
}
