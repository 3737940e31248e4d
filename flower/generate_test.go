package flower

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			a := Generate(k)
			b := Generate(k)
			assert.Equal(t, a, b)
			assert.Equal(t, string(a.SVG()), string(b.SVG()))
			assert.Equal(t, k, a.Kind)
		})
	}
}

func TestGenerateUnknownFallsBackToLotus(t *testing.T) {
	lotus := Generate(Lotus)
	for _, k := range []Kind{-1, 7, 42} {
		got := Generate(k)
		assert.Equal(t, lotus, got, "kind %d", int(k))
		assert.Equal(t, string(lotus.SVG()), string(got.SVG()))
	}
}

func TestSharedFrame(t *testing.T) {
	for _, k := range Kinds() {
		ill := Generate(k)
		require.Len(t, ill.Sparkles, 3, k.String())
		assert.Equal(t, []int{0, 220, 460}, []int{ill.Sparkles[0].Delay, ill.Sparkles[1].Delay, ill.Sparkles[2].Delay})
		assert.Len(t, ill.Stem, 5)
		assert.Equal(t, Point{56, 56}, ill.Disc.Center)
		assert.Equal(t, 52.0, ill.Disc.RX)
		assert.NotEmpty(t, ill.Bloom)
	}
}

func TestDaisyDrawsBloomWithoutShift(t *testing.T) {
	assert.Equal(t, Point{}, Generate(Daisy).BloomShift)
	assert.Equal(t, Point{0, 2}, Generate(Rose).BloomShift)
}

func TestRotatedPetals(t *testing.T) {
	cases := []struct {
		kind  Kind
		count int
		shift Point
	}{
		{Daisy, 10, Point{0, 8}},
		{Sunflower, 12, Point{0, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			petals := Generate(tc.kind).Bloom[0].Items
			require.Len(t, petals, tc.count)

			base := petals[0]
			for i, p := range petals {
				want := float64(i) * 360 / float64(tc.count)
				assert.InDelta(t, want, p.Transform.Rotate, 1e-9, "petal %d", i)
				assert.Equal(t, Point{56, 56}, p.Transform.Pivot)
				assert.Equal(t, tc.shift, p.Transform.Shift)
				assert.Equal(t, base.Center, p.Center)
				assert.Equal(t, base.RX, p.RX)
				assert.Equal(t, base.RY, p.RY)
			}

			// Every placed petal sits on the same circle around the pivot.
			r0 := dist(petals[0].Placed(), Point{56, 56})
			for _, p := range petals[1:] {
				assert.InDelta(t, r0, dist(p.Placed(), Point{56, 56}), 1e-9)
			}
		})
	}
}

func TestLavenderBuds(t *testing.T) {
	buds := Generate(Lavender).Bloom[0].Items
	require.Len(t, buds, 7)
	for i, b := range buds {
		assert.Equal(t, 30+6*float64(i), b.Center.Y)
		if i%2 == 0 {
			assert.Equal(t, 54.0, b.Center.X)
		} else {
			assert.Equal(t, 58.0, b.Center.X)
		}
	}
}

func TestPaintOrderPutsCentreLast(t *testing.T) {
	for _, k := range []Kind{Peony, Daisy, Rose, Sunflower, Lotus} {
		prims := Generate(k).BloomPrimitives()
		last := prims[len(prims)-1]
		assert.Equal(t, ShapeCircle, last.Shape, k.String())
	}
}

func TestSVGIsSelfContained(t *testing.T) {
	for _, k := range Kinds() {
		doc := string(Generate(k).SVG())
		assert.True(t, strings.HasPrefix(doc, "<svg "), k.String())
		assert.Contains(t, doc, `viewBox="0 0 112 112"`)
		assert.Contains(t, doc, `fill="url(#cg-bg-`+k.String()+`)"`)
		assert.NotContains(t, doc, "href")
		assert.NotContains(t, doc, "<image")
		assert.Equal(t, 3, strings.Count(doc, "<animate "))
	}
}

func TestSVGPetalTransforms(t *testing.T) {
	doc := string(Generate(Daisy).SVG())
	assert.Equal(t, 10, strings.Count(doc, "translate(0 8)"))
	assert.Contains(t, doc, `transform="rotate(36 56 56) translate(0 8)"`)
	assert.Contains(t, doc, `transform="rotate(324 56 56) translate(0 8)"`)
}

func TestPathData(t *testing.T) {
	p := closed(curve(56, 30, 52, 40, 52, 50, 56, 60))
	assert.Equal(t, "M56 30 C52 40, 52 50, 56 60Z", pathData(p))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" Sunflower ")
	assert.True(t, ok)
	assert.Equal(t, Sunflower, k)

	k, ok = ParseKind("orchid")
	assert.False(t, ok)
	assert.Equal(t, Lotus, k)

	var u Kind
	require.NoError(t, u.UnmarshalText([]byte("tulip")))
	assert.Equal(t, Tulip, u)
	assert.Error(t, u.UnmarshalText([]byte("orchid")))
}

func TestRasterize(t *testing.T) {
	img, err := Rasterize(Generate(Daisy), 64)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	painted := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted++
		}
	}
	assert.Greater(t, painted, 0)

	_, err = Rasterize(Generate(Daisy), 0)
	assert.Error(t, err)
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
