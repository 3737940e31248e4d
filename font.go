package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"card-garden/logger"
)

// LoadUIFont loads the TrueType font at path. Any failure falls back to
// basicfont.Face7x13.
func LoadUIFont(path string, size float64, log *logger.Logger) font.Face {
	log = log.With("font", path)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug("font not found, using basic font")
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Error(err, "font parse failed, using basic font")
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Error(err, "font face failed, using basic font")
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent, lineHeight := lineMetrics(face)
	// text.Draw expects the baseline.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}

// DrawTextCentered draws each line centred on cx.
func DrawTextCentered(screen *ebiten.Image, face font.Face, lines []string, cx, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent, lineHeight := lineMetrics(face)
	for i, line := range lines {
		w := font.MeasureString(face, line).Ceil()
		text.Draw(screen, line, face, cx-w/2, y+ascent+i*lineHeight, clr)
	}
}

func lineMetrics(face font.Face) (ascent, lineHeight int) {
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	lineHeight = m.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	return ascent, lineHeight
}

// WrapText breaks s into lines no wider than maxWidth pixels. Words longer
// than a line are kept whole on their own line.
func WrapText(face font.Face, s string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if font.MeasureString(face, next).Ceil() > maxWidth {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

// hasGlyphs reports whether face has a real glyph for every rune of s.
func hasGlyphs(face font.Face, s string) bool {
	if face == nil {
		return false
	}
	for _, r := range s {
		if _, ok := face.GlyphAdvance(r); !ok {
			return false
		}
	}
	return true
}
