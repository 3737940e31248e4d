package ambient

// Ramp is a linear parameter automation measured in samples. Set always
// replaces whatever ramp was in flight, starting from the value the old
// one had reached.
type Ramp struct {
	from, to   float64
	start, end int64
}

// NewRamp holds v until the first Set.
func NewRamp(v float64) Ramp {
	return Ramp{from: v, to: v}
}

// ValueAt returns the parameter value at sample pos.
func (r *Ramp) ValueAt(pos int64) float64 {
	switch {
	case pos >= r.end:
		return r.to
	case pos <= r.start:
		return r.from
	}
	t := float64(pos-r.start) / float64(r.end-r.start)
	return r.from + (r.to-r.from)*t
}

// Set cancels any ramp in progress and moves linearly from the current
// value at pos to target over length samples.
func (r *Ramp) Set(pos int64, target float64, length int64) {
	if length < 0 {
		length = 0
	}
	r.from = r.ValueAt(pos)
	r.to = target
	r.start = pos
	r.end = pos + length
}

func (r *Ramp) Target() float64 { return r.to }

// Done reports whether the ramp has reached its target at pos.
func (r *Ramp) Done(pos int64) bool { return pos >= r.end }
