package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"card-garden/cards"
	"card-garden/prefs"
)

func TestWrapText(t *testing.T) {
	face := basicfont.Face7x13

	assert.Equal(t, []string{"hello", "world foo"}, WrapText(face, "hello world foo", 70))
	assert.Equal(t, []string{"hello", "world", "foo"}, WrapText(face, "hello world foo", 50))
	assert.Equal(t, []string{"unbreakable", "x"}, WrapText(face, "unbreakable x", 20))
	assert.Equal(t, []string{"a", "", "b"}, WrapText(face, "a\n\nb", 100))
	assert.Equal(t, []string{""}, WrapText(face, "", 100))
}

func TestPaletteForThemes(t *testing.T) {
	pastel := PaletteFor(prefs.Pastel)
	dark := PaletteFor(prefs.Dark)

	assert.NotEqual(t, pastel.CardFront, dark.CardFront)
	assert.NotEqual(t, pastel.Backdrop.Top, dark.Backdrop.Top)
	assert.Equal(t, pastel, PaletteFor(prefs.Theme("neon")))
	assert.Equal(t, uint8(255), pastel.Panel.A)
}

func TestBadgeTextFallsBackWithoutGlyph(t *testing.T) {
	face := basicfont.Face7x13
	defs := cards.DefaultDefinitions()

	assert.False(t, hasGlyphs(face, defs[0].Badge))
	assert.Equal(t, "1", badgeText(face, defs[0]))
	assert.Equal(t, "7", badgeText(face, defs[6]))

	assert.True(t, hasGlyphs(face, "*"))
	assert.Equal(t, "*", badgeText(face, cards.Definition{ID: 2, Badge: "*"}))
	assert.Equal(t, "3", badgeText(nil, defs[2]))
}
