package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFitsAndCentres(t *testing.T) {
	area := Rect{X: 0, Y: 60, W: 1080, H: 640}
	rects := Grid(7, area, 200, 260, 20)
	require.Len(t, rects, 7)

	for i, r := range rects {
		assert.GreaterOrEqual(t, r.X, area.X, i)
		assert.LessOrEqual(t, r.X+r.W, area.X+area.W+1e-9, i)
		assert.GreaterOrEqual(t, r.Y, area.Y, i)
		assert.LessOrEqual(t, r.Y+r.H, area.Y+area.H+1e-9, i)
		assert.InDelta(t, 200.0/260.0, r.W/r.H, 1e-9, "aspect is kept")
	}

	// Cards never overlap.
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			overlap := a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
			assert.False(t, overlap, "%d and %d overlap", i, j)
		}
	}
}

func TestGridNeverGrows(t *testing.T) {
	rects := Grid(1, Rect{W: 5000, H: 5000}, 200, 260, 20)
	require.Len(t, rects, 1)
	assert.Equal(t, 200.0, rects[0].W)
	assert.Equal(t, 2400.0, rects[0].X)
}

func TestGridEmpty(t *testing.T) {
	assert.Nil(t, Grid(0, Rect{W: 100, H: 100}, 10, 10, 1))
	assert.Nil(t, Grid(3, Rect{}, 10, 10, 1))
}

func TestRect(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(110, 20))
	x, y := r.Center()
	assert.Equal(t, [2]float64{60, 45}, [2]float64{x, y})
	assert.Equal(t, Rect{15, 25, 90, 40}, r.Inset(5))
}
