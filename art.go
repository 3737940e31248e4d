package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"card-garden/flower"
	"card-garden/logger"
)

type artKey struct {
	kind flower.Kind
	size int
}

// artCache holds rasterized flowers and the per-card offscreen faces, so
// the SVG path runs once per kind and size instead of every frame.
type artCache struct {
	log     *logger.Logger
	flowers map[artKey]*ebiten.Image
	faces   map[int]*ebiten.Image
}

func newArtCache(log *logger.Logger) *artCache {
	return &artCache{
		log:     log.With("component", "art"),
		flowers: make(map[artKey]*ebiten.Image),
		faces:   make(map[int]*ebiten.Image),
	}
}

// flower returns ill rendered at size×size, or nil when rasterizing fails.
func (a *artCache) flower(ill flower.Illustration, size int) *ebiten.Image {
	key := artKey{ill.Kind, size}
	if img, ok := a.flowers[key]; ok {
		return img
	}
	rgba, err := flower.Rasterize(ill, size)
	if err != nil {
		a.log.With("kind", ill.Kind.String()).Error(err, "rasterize flower")
		a.flowers[key] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(rgba)
	a.flowers[key] = img
	return img
}

// scratch returns a cleared w×h image owned by card id, reallocating only
// when the size changes.
func (a *artCache) scratch(id, w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	img, ok := a.faces[id]
	if ok {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			img.Clear()
			return img
		}
		img.Deallocate()
	}
	img = ebiten.NewImage(w, h)
	a.faces[id] = img
	return img
}
