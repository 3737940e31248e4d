package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Backdrop colours for one theme.
type Backdrop struct {
	Top, Bottom color.RGBA
	Sparkle     color.RGBA
}

// sparkle positions as fractions of the window, fixed so the backdrop is
// stable across frames and resizes.
var sparkles = [...][3]float64{
	{0.06, 0.18, 2.4}, {0.21, 0.72, 1.8}, {0.34, 0.09, 2.0}, {0.47, 0.88, 2.6},
	{0.58, 0.31, 1.6}, {0.69, 0.94, 2.2}, {0.81, 0.14, 2.8}, {0.93, 0.61, 1.9},
	{0.12, 0.46, 1.7}, {0.88, 0.38, 2.1}, {0.40, 0.55, 1.5}, {0.74, 0.70, 2.3},
}

// DrawBackdrop fills the window with a vertical gradient and a scattering
// of slowly twinkling dots. t is the time in seconds since start.
func DrawBackdrop(screen *ebiten.Image, screenWidth, screenHeight int, b Backdrop, t float64) {
	const bands = 48
	bandH := float32(screenHeight) / bands
	for i := 0; i < bands; i++ {
		f := float64(i) / (bands - 1)
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, float32(screenWidth), bandH+1, lerp(b.Top, b.Bottom, f), false)
	}

	for i, s := range sparkles {
		// Staggered the same way as the illustration sparkles.
		phase := t*2*math.Pi/2.4 - float64(i)*0.9
		alpha := 0.35 + 0.65*(0.5+0.5*math.Sin(phase))
		c := b.Sparkle
		c.A = uint8(float64(c.A) * alpha)
		vector.DrawFilledCircle(screen, float32(s[0]*float64(screenWidth)), float32(s[1]*float64(screenHeight)), float32(s[2]), premultiply(c), true)
	}
}

func lerp(a, b color.RGBA, f float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f)) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// premultiply converts a straight-alpha colour into the premultiplied form
// color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{uint8(float64(c.R) * a), uint8(float64(c.G) * a), uint8(float64(c.B) * a), c.A}
}
