package ambient

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	src       io.Reader
	starts    int
	resumes   int
	closed    bool
	startErr  error
	resumeErr error
}

func (f *fakeBackend) Start(src io.Reader) error {
	f.starts++
	if f.startErr != nil {
		return f.startErr
	}
	f.src = src
	return nil
}

func (f *fakeBackend) Resume(ctx context.Context) error {
	f.resumes++
	if f.resumeErr != nil {
		return f.resumeErr
	}
	return ctx.Err()
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	return cfg
}

func TestRampCancelAndReplace(t *testing.T) {
	r := NewRamp(0)
	r.Set(0, 0.22, 100)
	assert.InDelta(t, 0.11, r.ValueAt(50), 1e-12)

	// Turning off halfway starts from where the fade-in got to.
	r.Set(50, 0, 100)
	assert.InDelta(t, 0.11, r.ValueAt(50), 1e-12)
	assert.InDelta(t, 0.055, r.ValueAt(100), 1e-12)
	assert.Equal(t, 0.0, r.ValueAt(150))
	assert.True(t, r.Done(150))
}

func TestRampStaysInRangeUnderRapidToggling(t *testing.T) {
	const target = 0.22
	r := NewRamp(0)
	on := false
	pos := int64(0)
	for step := 0; step < 200; step++ {
		on = !on
		if on {
			r.Set(pos, target, 280)
		} else {
			r.Set(pos, 0, 200)
		}

		prev := r.ValueAt(pos)
		hold := int64(1 + step%37)
		for i := int64(1); i <= hold; i++ {
			v := r.ValueAt(pos + i)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, target)
			if on {
				require.GreaterOrEqual(t, v, prev, "fade-in must not fall")
			} else {
				require.LessOrEqual(t, v, prev, "fade-out must not rise")
			}
			prev = v
		}
		pos += hold
	}

	// Whatever state the toggling ended in, the ramp settles on its target.
	r.Set(pos, 0, 200)
	assert.Equal(t, 0.0, r.ValueAt(pos+200))
}

func TestSynthSilentWhileMuted(t *testing.T) {
	s := NewSynth(testConfig())
	for _, v := range s.Render(4000) {
		require.Equal(t, 0.0, v)
	}
}

func TestSynthFadesIn(t *testing.T) {
	cfg := testConfig()
	s := NewSynth(cfg)
	s.SetLevel(cfg.TargetGain, cfg.RampOn)

	samples := s.Render(cfg.SampleRate) // one second
	assert.InDelta(t, cfg.TargetGain, s.Level(), 1e-12)

	peak := 0.0
	for _, v := range samples {
		peak = math.Max(peak, math.Abs(v))
	}
	assert.Greater(t, peak, 0.01)
	assert.Less(t, peak, 1.0)
	assert.Equal(t, time.Second, s.Clock())
}

func TestSynthReadWritesStereoFloat32(t *testing.T) {
	cfg := testConfig()
	s := NewSynth(cfg)
	s.SetLevel(cfg.TargetGain, 0)

	buf := make([]byte, 10*BytesPerFrame+3)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 10*BytesPerFrame, n)

	for i := 0; i < 10; i++ {
		l := binary.LittleEndian.Uint32(buf[i*BytesPerFrame:])
		r := binary.LittleEndian.Uint32(buf[i*BytesPerFrame+4:])
		assert.Equal(t, l, r)
	}
}

func TestOscillatorTriangle(t *testing.T) {
	o := Oscillator{Wave: Triangle, Freq: 1}
	got := []float64{o.Next(4), o.Next(4), o.Next(4), o.Next(4)}
	assert.InDeltaSlice(t, []float64{0, 1, 0, -1}, got, 1e-12)
}

func TestEngineEnsureRunningStartsOnce(t *testing.T) {
	b := &fakeBackend{}
	e := NewEngine(b, testConfig(), nil)

	require.NoError(t, e.EnsureRunning(context.Background()))
	require.NoError(t, e.EnsureRunning(context.Background()))
	assert.Equal(t, 1, b.starts)
	assert.Equal(t, 2, b.resumes)
	assert.True(t, e.Running())
	assert.Same(t, e.Synth(), b.src)

	require.NoError(t, e.Close())
	assert.True(t, b.closed)
	assert.False(t, e.Running())
}

func TestEngineSurfacesDenial(t *testing.T) {
	denied := errors.New("not allowed")

	e := NewEngine(&fakeBackend{startErr: denied}, testConfig(), nil)
	err := e.EnsureRunning(context.Background())
	assert.ErrorIs(t, err, ErrAudioUnavailable)
	assert.ErrorIs(t, err, denied)
	assert.False(t, e.Running())

	e = NewEngine(&fakeBackend{resumeErr: denied}, testConfig(), nil)
	err = e.EnsureRunning(context.Background())
	assert.ErrorIs(t, err, ErrAudioUnavailable)
	assert.False(t, e.Running())
}

func TestEngineResumeHonoursContext(t *testing.T) {
	e := NewEngine(&fakeBackend{}, testConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.EnsureRunning(ctx), context.Canceled)
}

func TestEngineSetEnabled(t *testing.T) {
	cfg := testConfig()
	e := NewEngine(&fakeBackend{}, cfg, nil)

	e.SetEnabled(true)
	assert.True(t, e.Enabled())
	assert.Equal(t, cfg.TargetGain, e.TargetGain())

	e.Synth().Render(cfg.SampleRate / 10)
	e.SetEnabled(false)
	assert.False(t, e.Enabled())
	assert.Equal(t, 0.0, e.TargetGain())

	e.Synth().Render(cfg.SampleRate)
	assert.Equal(t, 0.0, e.Synth().Level())
}

func TestCloseBeforeStartIsNoOp(t *testing.T) {
	b := &fakeBackend{}
	e := NewEngine(b, testConfig(), nil)
	require.NoError(t, e.Close())
	assert.False(t, b.closed)
}
