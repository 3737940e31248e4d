package canvas

import "math"

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X + d, r.Y + d, math.Max(0, r.W-2*d), math.Max(0, r.H-2*d)}
}

// Grid places n cards of aspect w:h in rows inside area, centring every row.
// Cards shrink when the area is too small for their natural size and never
// grow past it.
func Grid(n int, area Rect, w, h, gap float64) []Rect {
	if n <= 0 || area.W <= 0 || area.H <= 0 {
		return nil
	}

	best := 1
	bestScale := 0.0
	for cols := 1; cols <= n; cols++ {
		rows := (n + cols - 1) / cols
		sx := (area.W - gap*float64(cols-1)) / (w * float64(cols))
		sy := (area.H - gap*float64(rows-1)) / (h * float64(rows))
		s := math.Min(math.Min(sx, sy), 1)
		if s > bestScale {
			best, bestScale = cols, s
		}
	}

	cols := best
	rows := (n + cols - 1) / cols
	cw, ch := w*bestScale, h*bestScale
	totalH := ch*float64(rows) + gap*float64(rows-1)
	y0 := area.Y + (area.H-totalH)/2

	out := make([]Rect, 0, n)
	for r := 0; r < rows; r++ {
		inRow := min(cols, n-r*cols)
		rowW := cw*float64(inRow) + gap*float64(inRow-1)
		x0 := area.X + (area.W-rowW)/2
		for c := 0; c < inRow; c++ {
			out = append(out, Rect{
				X: x0 + float64(c)*(cw+gap),
				Y: y0 + float64(r)*(ch+gap),
				W: cw,
				H: ch,
			})
		}
	}
	return out
}
