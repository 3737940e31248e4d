package ambient

import (
	"encoding/binary"
	"math"
	"sync"
	"time"
)

// Config holds the pad voicing. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	SampleRate int

	// Tone generators
	ToneFreq   float64 // Sine voice frequency (Hz)
	ToneGain   float64 // Sine voice level
	DetuneFreq float64 // Triangle voice frequency (Hz), a hair above ToneFreq
	DetuneGain float64 // Triangle voice level

	// Low-pass filter
	Cutoff       float64 // Base cutoff (Hz)
	ResonanceDB  float64 // Filter Q in dB
	CutoffLFO    float64 // Cutoff sweep rate (Hz)
	CutoffDepth  float64 // Cutoff sweep range (Hz)
	ControlBlock int     // Samples between filter coefficient updates

	// Master level
	TargetGain  float64       // Audible master level
	BreathRate  float64       // Level LFO rate (Hz)
	BreathDepth float64       // Level LFO depth at TargetGain
	RampOn      time.Duration // Fade-in length
	RampOff     time.Duration // Fade-out length
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,

		ToneFreq:   196, // G3
		ToneGain:   0.22,
		DetuneFreq: 196.7,
		DetuneGain: 0.16,

		Cutoff:       900,
		ResonanceDB:  0.7,
		CutoffLFO:    0.07,
		CutoffDepth:  140,
		ControlBlock: 128,

		TargetGain:  0.22,
		BreathRate:  0.18,
		BreathDepth: 0.06,
		RampOn:      350 * time.Millisecond,
		RampOff:     250 * time.Millisecond,
	}
}

// BytesPerFrame is one stereo frame of little-endian float32 samples.
const BytesPerFrame = 8

// Synth renders the pad. Its generators run from construction for as long
// as something keeps reading; only the master level ever changes. Read is
// called from the audio goroutine while SetLevel comes from the game loop.
type Synth struct {
	mu  sync.Mutex
	cfg Config

	tone, detune  Oscillator
	sweep, breath Oscillator
	filter        Biquad

	master Ramp
	pos    int64
}

func NewSynth(cfg Config) *Synth {
	if cfg.ControlBlock <= 0 {
		cfg.ControlBlock = 128
	}
	s := &Synth{
		cfg:    cfg,
		tone:   Oscillator{Wave: Sine, Freq: cfg.ToneFreq},
		detune: Oscillator{Wave: Triangle, Freq: cfg.DetuneFreq},
		sweep:  Oscillator{Wave: Sine, Freq: cfg.CutoffLFO},
		breath: Oscillator{Wave: Sine, Freq: cfg.BreathRate},
		master: NewRamp(0),
	}
	s.filter.SetLowpass(cfg.Cutoff, cfg.ResonanceDB, s.rate())
	return s
}

func (s *Synth) rate() float64 { return float64(s.cfg.SampleRate) }

// Read fills p with whole stereo float32 frames.
func (s *Synth) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	frames := len(p) / BytesPerFrame
	for i := 0; i < frames; i++ {
		bits := math.Float32bits(float32(s.next()))
		binary.LittleEndian.PutUint32(p[i*BytesPerFrame:], bits)
		binary.LittleEndian.PutUint32(p[i*BytesPerFrame+4:], bits)
	}
	return frames * BytesPerFrame, nil
}

// Render produces n mono samples. It advances the same clock as Read.
func (s *Synth) Render(n int) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = s.next()
	}
	return out
}

func (s *Synth) next() float64 {
	rate := s.rate()

	sweep := s.sweep.Next(rate)
	if s.pos%int64(s.cfg.ControlBlock) == 0 {
		s.filter.SetLowpass(s.cfg.Cutoff+s.cfg.CutoffDepth*sweep, s.cfg.ResonanceDB, rate)
	}

	voice := s.tone.Next(rate)*s.cfg.ToneGain + s.detune.Next(rate)*s.cfg.DetuneGain
	filtered := s.filter.Process(voice)

	level := s.master.ValueAt(s.pos)
	breath := s.breath.Next(rate)
	if s.cfg.TargetGain > 0 {
		level *= 1 + breath*s.cfg.BreathDepth/s.cfg.TargetGain
	}

	s.pos++
	return filtered * level
}

// SetLevel ramps the master level to target over d, replacing any ramp
// still in progress.
func (s *Synth) SetLevel(target float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.master.Set(s.pos, target, s.samples(d))
}

// Level is the master ramp value at the current audio clock, before the
// breathing modulation.
func (s *Synth) Level() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master.ValueAt(s.pos)
}

// Target is where the master ramp is heading.
func (s *Synth) Target() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.master.Target()
}

// Clock is the amount of audio rendered so far.
func (s *Synth) Clock() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(s.pos) * time.Second / time.Duration(s.cfg.SampleRate)
}

func (s *Synth) samples(d time.Duration) int64 {
	return int64(d) * int64(s.cfg.SampleRate) / int64(time.Second)
}
