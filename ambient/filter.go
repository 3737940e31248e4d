package ambient

import "math"

// Biquad is a second-order IIR section configured as a resonant low-pass
// (RBJ cookbook coefficients).
type Biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

// SetLowpass recomputes the coefficients. Resonance is given in dB and
// cutoff is clamped below Nyquist.
func (f *Biquad) SetLowpass(cutoff, resonanceDB, rate float64) {
	nyquist := rate / 2
	cutoff = math.Max(10, math.Min(cutoff, nyquist*0.99))
	q := math.Pow(10, resonanceDB/20)

	w0 := 2 * math.Pi * cutoff / rate
	sin, cos := math.Sincos(w0)
	alpha := sin / (2 * q)

	a0 := 1 + alpha
	f.b0 = (1 - cos) / 2 / a0
	f.b1 = (1 - cos) / a0
	f.b2 = (1 - cos) / 2 / a0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
}

func (f *Biquad) Process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
