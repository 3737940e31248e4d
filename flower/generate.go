package flower

import "math"

const (
	DaisyPetals     = 10
	SunflowerPetals = 12
	LavenderBuds    = 7

	lavenderTop  = 30.0
	lavenderStep = 6.0
	lavenderSway = 2.0
)

var center = Point{56, 56}

var backgrounds = [...]Gradient{
	Peony:     {Inner: rgba(255, 210, 230, 0.9), Outer: rgba(255, 160, 200, 0.35)},
	Tulip:     {Inner: rgba(255, 225, 242, 0.9), Outer: rgba(170, 220, 255, 0.35)},
	Daisy:     {Inner: rgba(255, 250, 220, 0.9), Outer: rgba(190, 170, 255, 0.35)},
	Rose:      {Inner: rgba(255, 200, 220, 0.85), Outer: rgba(255, 120, 160, 0.3)},
	Lavender:  {Inner: rgba(230, 210, 255, 0.85), Outer: rgba(150, 210, 255, 0.28)},
	Sunflower: {Inner: rgba(255, 240, 190, 0.9), Outer: rgba(255, 170, 90, 0.26)},
	Lotus:     {Inner: rgba(210, 240, 255, 0.85), Outer: rgba(255, 170, 230, 0.28)},
}

// Generate draws the illustration for kind. It is pure and deterministic;
// kinds outside the enumeration get the lotus.
func Generate(kind Kind) Illustration {
	if !kind.Valid() {
		kind = DefaultKind
	}

	shift := Point{0, 2}
	var bloom []Group
	switch kind {
	case Peony:
		bloom = peony()
	case Tulip:
		bloom = tulip()
	case Daisy:
		bloom = daisy()
		shift = Point{}
	case Rose:
		bloom = rose()
	case Lavender:
		bloom = lavender()
	case Sunflower:
		bloom = sunflower()
	default:
		bloom = lotus()
	}

	bg := backgrounds[kind]
	bg.Focus = Point{35, 28}

	return Illustration{
		Kind:       kind,
		Background: bg,
		Disc:       circle(56, 56, 52, Paint{}).withOpacity(0.8),
		Sparkles:   sparkles(),
		Stem:       stem(),
		BloomShift: shift,
		Bloom:      bloom,
	}
}

func sparkles() []Sparkle {
	return []Sparkle{
		{Dot: circle(20, 26, 2.6, rgba(255, 255, 255, 0.9)), Delay: 0},
		{Dot: circle(92, 32, 2.2, rgba(255, 255, 255, 0.8)), Delay: 220},
		{Dot: circle(30, 88, 2.4, rgba(255, 255, 255, 0.75)), Delay: 460},
	}
}

func stem() []Primitive {
	return []Primitive{
		stroked(curve(56, 98, 56, 84, 58, 76, 60, 68), rgba(60, 150, 110, 0.95), 6),
		stroked(curve(58, 80, 48, 76, 42, 70, 40, 64), rgba(60, 150, 110, 0.85), 5),
		stroked(curve(56, 82, 67, 80, 74, 74, 78, 66), rgba(60, 150, 110, 0.78), 5),
		ellipse(43, 64, 10, 6, rgba(120, 220, 170, 0.65)),
		ellipse(79, 66, 10, 6, rgba(120, 220, 170, 0.58)),
	}
}

// rotated repeats base count times about pivot, step i turned by
// i*360/count degrees after being pushed out by shift.
func rotated(base Primitive, count int, pivot, shift Point) []Primitive {
	out := make([]Primitive, count)
	for i := range out {
		p := base
		p.Transform = Transform{
			Rotate: float64(i) * 360 / float64(count),
			Pivot:  pivot,
			Shift:  shift,
		}
		out[i] = p
	}
	return out
}

// stacked repeats base count times down the y axis, swaying left on even
// steps and right on odd ones.
func stacked(base Primitive, count int, top, step, sway float64) []Primitive {
	out := make([]Primitive, count)
	for i := range out {
		p := base
		p.Center.Y = top + float64(i)*step
		if i%2 == 0 {
			p.Center.X = base.Center.X - sway
		} else {
			p.Center.X = base.Center.X + sway
		}
		out[i] = p
	}
	return out
}

func peony() []Group {
	petals := group(
		ellipse(56, 40, 14, 10, hex("#ff8fc5")),
		ellipse(44, 48, 14, 10, hex("#ff9fd0")),
		ellipse(68, 48, 14, 10, hex("#ff9fd0")),
		ellipse(48, 62, 14, 10, hex("#ff7fbe")),
		ellipse(64, 62, 14, 10, hex("#ff7fbe")),
		ellipse(56, 68, 14, 10, hex("#ff67b3")),
	)
	petals.Opacity = 0.98
	return []Group{
		group(circle(56, 52, 10, hex("#ffd7ea"))),
		petals,
		group(circle(56, 52, 7, hex("#fff2a8")).withOpacity(0.95)),
	}
}

func tulip() []Group {
	return []Group{group(
		filled(closed(curve(56, 30, 46, 38, 42, 50, 46, 62, 52, 72, 60, 72, 66, 62, 70, 50, 66, 38, 56, 30)), hex("#ff7fb5")),
		filled(closed(curve(56, 30, 52, 40, 52, 50, 56, 60, 60, 50, 60, 40, 56, 30)), hex("#ff5fa2")).withOpacity(0.85),
		stroked(curve(46, 62, 54, 56, 58, 56, 66, 62), rgba(255, 255, 255, 0.55), 2),
	)}
}

func daisy() []Group {
	petal := ellipse(56, 46, 7, 16, hex("#ffffff")).withOpacity(0.95)
	return []Group{
		group(rotated(petal, DaisyPetals, center, Point{0, 8})...),
		group(
			circle(56, 56, 12, hex("#ffe27a")),
			circle(56, 56, 6, hex("#ffbf3f")).withOpacity(0.9),
		),
	}
}

func rose() []Group {
	return []Group{group(
		filled(closed(curve(56, 34, 44, 36, 40, 48, 46, 58, 52, 68, 64, 68, 70, 58, 76, 48, 68, 36, 56, 34)), hex("#ff4b7d")),
		filled(closed(curve(56, 38, 50, 42, 50, 50, 56, 54, 62, 50, 62, 42, 56, 38)), hex("#ff87b0")).withOpacity(0.9),
		filled(closed(curve(56, 54, 50, 56, 48, 62, 52, 66, 56, 70, 64, 68, 66, 62, 68, 56, 62, 52, 56, 54)), hex("#ff2f6f")).withOpacity(0.9),
		circle(56, 52, 5.5, hex("#fff2a8")).withOpacity(0.95),
	)}
}

func lavender() []Group {
	bud := ellipse(56, lavenderTop, 8, 5, rgba(190, 130, 255, 0.92))
	buds := stacked(bud, LavenderBuds, lavenderTop, lavenderStep, lavenderSway)
	return []Group{
		group(buds...),
		group(ellipse(56, 72, 7, 4, rgba(190, 130, 255, 0.72))),
	}
}

func sunflower() []Group {
	petal := ellipse(56, 44, 6, 18, hex("#ffd15a")).withOpacity(0.95)
	return []Group{
		group(rotated(petal, SunflowerPetals, center, Point{0, 10})...),
		group(
			circle(56, 56, 14, hex("#6b3d2a")).withOpacity(0.9),
			circle(56, 56, 9, hex("#8a4b32")).withOpacity(0.9),
			circle(56, 56, 4.5, hex("#ffd15a")).withOpacity(0.9),
		),
	}
}

func lotus() []Group {
	side := rgba(255, 160, 220, 0.9)
	return []Group{group(
		ellipse(56, 60, 14, 10, rgba(255, 170, 215, 0.92)),
		filled(closed(curve(56, 30, 48, 42, 48, 52, 56, 62, 64, 52, 64, 42, 56, 30)), rgba(255, 120, 190, 0.95)),
		filled(closed(curve(40, 44, 42, 56, 48, 64, 56, 68, 48, 62, 42, 54, 40, 44)), side),
		filled(closed(curve(72, 44, 70, 56, 64, 64, 56, 68, 64, 62, 70, 54, 72, 44)), side),
		circle(56, 56, 5.5, hex("#fff2a8")).withOpacity(0.95),
	)}
}

func sincosDeg(deg float64) (float64, float64) {
	return math.Sincos(deg * math.Pi / 180)
}
