package ambient

import (
	"fmt"
	"math"
)

type Waveform int

const (
	Sine Waveform = iota
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// Oscillator is a free-running periodic source. Phase is kept in [0, 1).
type Oscillator struct {
	Wave  Waveform
	Freq  float64
	phase float64
}

// Next returns the current sample and advances by one sample at rate.
func (o *Oscillator) Next(rate float64) float64 {
	v := o.value()
	o.phase += o.Freq / rate
	o.phase -= math.Floor(o.phase)
	return v
}

func (o *Oscillator) value() float64 {
	switch o.Wave {
	case Triangle:
		// Starts at zero and rises.
		switch {
		case o.phase < 0.25:
			return 4 * o.phase
		case o.phase < 0.75:
			return 2 - 4*o.phase
		default:
			return 4*o.phase - 4
		}
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}
