package ambient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"card-garden/logger"
)

// ErrAudioUnavailable wraps every platform failure to start or resume audio.
var ErrAudioUnavailable = errors.New("ambient: audio unavailable")

// Backend is the platform audio output. Start hands it the sample stream
// once; Resume blocks until the platform reports it is running or ctx ends.
type Backend interface {
	Start(src io.Reader) error
	Resume(ctx context.Context) error
	Close() error
}

// Engine owns the pad for the whole session. The generators never stop;
// SetEnabled only fades the master level in or out.
type Engine struct {
	backend Backend
	synth   *Synth
	cfg     Config
	log     *logger.Logger

	mu      sync.Mutex
	started bool
	running bool
	enabled bool
}

func NewEngine(backend Backend, cfg Config, log *logger.Logger) *Engine {
	return &Engine{
		backend: backend,
		synth:   NewSynth(cfg),
		cfg:     cfg,
		log:     log.With("component", "ambient"),
	}
}

// EnsureRunning starts the backend on first use and resumes it if the
// platform has it suspended. It may block until the platform confirms.
func (e *Engine) EnsureRunning(ctx context.Context) error {
	e.mu.Lock()
	if !e.started {
		if err := e.backend.Start(e.synth); err != nil {
			e.mu.Unlock()
			return fmt.Errorf("%w: start: %w", ErrAudioUnavailable, err)
		}
		e.started = true
		e.log.Debug("audio backend started")
	}
	e.mu.Unlock()

	if err := e.backend.Resume(ctx); err != nil {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		return fmt.Errorf("%w: resume: %w", ErrAudioUnavailable, err)
	}

	e.mu.Lock()
	e.running = true
	e.mu.Unlock()
	return nil
}

// SetEnabled fades the master level to the audible target or to silence.
func (e *Engine) SetEnabled(on bool) {
	e.mu.Lock()
	e.enabled = on
	e.mu.Unlock()

	if on {
		e.synth.SetLevel(e.cfg.TargetGain, e.cfg.RampOn)
	} else {
		e.synth.SetLevel(0, e.cfg.RampOff)
	}
}

func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// TargetGain is the level the master ramp is heading to.
func (e *Engine) TargetGain() float64 { return e.synth.Target() }

// Synth exposes the sample source, mainly for tests and visualisation.
func (e *Engine) Synth() *Synth { return e.synth }

// Close releases the backend.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	if !e.started {
		return nil
	}
	return e.backend.Close()
}
