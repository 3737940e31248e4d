package main

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"card-garden/canvas"
	"card-garden/prefs"
	"card-garden/ui"
)

const (
	// --- Cards ---
	CardWidth      = 190.0
	CardHeight     = 250.0
	CardGap        = 22.0
	CardPadding    = 14.0
	ShadowOffset   = 6.0
	FocusThickness = 3.0
	FocusOffset    = 5.0
	HoverLift      = 4.0
	BadgeRadius    = 18.0
	MiniFlowerSize = 112

	// --- Overlay ---
	OverlayWidth       = 420.0
	OverlayHeight      = 470.0
	OverlayFlowerSize  = 224
	OverlayButtonWidth = 120.0
	OverlayButtonH     = 36.0

	// --- Text ---
	FontPath  = "fonts/Roboto-Regular.ttf"
	FontSize  = 16
	HintText  = "tap to reveal"
	TitleText = "Card Garden"

	ScreenshotFile = "screenshot.png"
)

// Palette is every colour one theme draws with.
type Palette struct {
	Backdrop  canvas.Backdrop
	CardFront color.RGBA
	CardBack  color.RGBA
	CardHover color.RGBA
	Badge     color.RGBA
	Ink       color.RGBA
	InkSoft   color.RGBA
	Accent    color.RGBA
	Shadow    color.RGBA
	Scrim     color.RGBA
	Panel     color.RGBA
	Button    ui.Style
	ToastBg   color.RGBA
	ToastFg   color.RGBA
}

type themeSeed struct {
	top, bottom, card, back, ink, accent string
	dark                                 bool
}

var themeSeeds = map[prefs.Theme]themeSeed{
	prefs.Pastel: {
		top: "#fff4f8", bottom: "#f3e9ff",
		card: "#ffd6e8", back: "#fffaf3",
		ink: "#5a3a4a", accent: "#ff7fb5",
	},
	prefs.Dark: {
		top: "#1d1b26", bottom: "#2b2140",
		card: "#3a2f4d", back: "#2a2635",
		ink: "#f3e8f0", accent: "#ff9fd0",
		dark: true,
	},
}

var palettes = map[prefs.Theme]Palette{}

func init() {
	for theme, seed := range themeSeeds {
		palettes[theme] = buildPalette(seed)
	}
}

// PaletteFor returns the colours of theme, falling back to pastel.
func PaletteFor(theme prefs.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[prefs.Pastel]
}

func buildPalette(s themeSeed) Palette {
	top := colorful.MustParseHex(s.top)
	bottom := colorful.MustParseHex(s.bottom)
	card := colorful.MustParseHex(s.card)
	back := colorful.MustParseHex(s.back)
	ink := colorful.MustParseHex(s.ink)
	accent := colorful.MustParseHex(s.accent)

	shadowAlpha := uint8(40)
	if s.dark {
		shadowAlpha = 110
	}

	return Palette{
		Backdrop: canvas.Backdrop{
			Top:     rgba(top, 255),
			Bottom:  rgba(bottom, 255),
			Sparkle: straight(accent.BlendLab(top, 0.35), 200),
		},
		CardFront: rgba(card, 255),
		CardBack:  rgba(back, 255),
		CardHover: rgba(card.BlendLab(accent, 0.18), 255),
		Badge:     rgba(accent.BlendLab(card, 0.25), 255),
		Ink:       rgba(ink, 255),
		InkSoft:   rgba(ink.BlendLab(card, 0.45), 255),
		Accent:    rgba(accent, 255),
		Shadow:    rgba(colorful.Color{}, shadowAlpha),
		Scrim:     rgba(ink.BlendLab(colorful.Color{}, 0.5), 150),
		Panel:     rgba(back.BlendLab(top, 0.3), 255),
		Button: ui.Style{
			Fill:  rgba(card.BlendLab(back, 0.35), 235),
			Hover: rgba(card.BlendLab(accent, 0.3), 245),
			Text:  rgba(ink, 255),
			Focus: rgba(accent, 255),
		},
		ToastBg: rgba(ink, 220),
		ToastFg: rgba(back, 255),
	}
}

// rgba converts c to the premultiplied color.RGBA ebiten draws with.
func rgba(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	k := float64(a) / 255
	return color.RGBA{uint8(float64(r) * k), uint8(float64(g) * k), uint8(float64(b) * k), a}
}

// straight keeps alpha unapplied; canvas premultiplies after twinkling.
func straight(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, a}
}
