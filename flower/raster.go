package flower

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize renders the illustration into a size×size RGBA image.
func Rasterize(ill Illustration, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("flower: raster size must be positive, got %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(ill.SVG()), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("flower: parse %s svg: %w", ill.Kind, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}
