package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ebitenAudio plays the pad through Ebitengine's audio context. The context
// is created on first Start; the platform may keep it unready until the
// window has seen user input.
type ebitenAudio struct {
	sampleRate int
	buffer     time.Duration

	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
}

func newEbitenAudio(sampleRate int) *ebitenAudio {
	return &ebitenAudio{sampleRate: sampleRate, buffer: 80 * time.Millisecond}
}

func (a *ebitenAudio) Start(src io.Reader) (err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player != nil {
		return nil
	}

	// audio.NewContext panics when a context with another rate exists.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio context: %v", r)
		}
	}()
	if a.ctx = audio.CurrentContext(); a.ctx == nil {
		a.ctx = audio.NewContext(a.sampleRate)
	}

	p, err := a.ctx.NewPlayerF32(src)
	if err != nil {
		return fmt.Errorf("audio player: %w", err)
	}
	p.SetBufferSize(a.buffer)
	p.Play()
	a.player = p
	return nil
}

// Resume waits until the platform reports the context ready and makes sure
// the player is running.
func (a *ebitenAudio) Resume(ctx context.Context) error {
	a.mu.Lock()
	actx, player := a.ctx, a.player
	a.mu.Unlock()
	if actx == nil || player == nil {
		return errors.New("audio not started")
	}

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for !actx.IsReady() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
	if !player.IsPlaying() {
		player.Play()
	}
	return nil
}

func (a *ebitenAudio) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player == nil {
		return nil
	}
	err := a.player.Close()
	a.player = nil
	return err
}
