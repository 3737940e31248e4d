package flower

import "fmt"

// ViewBox is the side of the square logical coordinate space.
const ViewBox = 112.0

type Point struct {
	X, Y float64
}

// Paint is a colour with its own alpha. An empty Color means no paint.
type Paint struct {
	Color   string
	Opacity float64
}

func (p Paint) None() bool { return p.Color == "" }

func hex(color string) Paint {
	return Paint{Color: color, Opacity: 1}
}

func rgba(r, g, b uint8, a float64) Paint {
	return Paint{Color: fmt.Sprintf("#%02x%02x%02x", r, g, b), Opacity: a}
}

// Transform mirrors the SVG "rotate(a cx cy) translate(tx ty)" pair: the
// translate applies first, then the rotation about the pivot.
type Transform struct {
	Rotate float64
	Pivot  Point
	Shift  Point
}

func (t Transform) Identity() bool {
	return t.Rotate == 0 && t.Shift == (Point{})
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Point) Point {
	p.X += t.Shift.X
	p.Y += t.Shift.Y
	if t.Rotate == 0 {
		return p
	}
	s, c := sincosDeg(t.Rotate)
	dx, dy := p.X-t.Pivot.X, p.Y-t.Pivot.Y
	return Point{
		X: t.Pivot.X + dx*c - dy*s,
		Y: t.Pivot.Y + dx*s + dy*c,
	}
}

// Cubic is one cubic Bézier segment continuing from the previous end point.
type Cubic struct {
	C1, C2, End Point
}

type Path struct {
	Start    Point
	Segments []Cubic
	Closed   bool
}

// curve builds a path from a start point and groups of six numbers
// (c1x c1y c2x c2y x y). It is only fed from the static tables below.
func curve(x, y float64, pts ...float64) Path {
	if len(pts)%6 != 0 {
		panic(fmt.Sprintf("flower: curve needs groups of 6 numbers, got %d", len(pts)))
	}
	p := Path{Start: Point{x, y}}
	for i := 0; i < len(pts); i += 6 {
		p.Segments = append(p.Segments, Cubic{
			C1:  Point{pts[i], pts[i+1]},
			C2:  Point{pts[i+2], pts[i+3]},
			End: Point{pts[i+4], pts[i+5]},
		})
	}
	return p
}

func closed(p Path) Path {
	p.Closed = true
	return p
}

type Shape int

const (
	ShapeCircle Shape = iota
	ShapeEllipse
	ShapePath
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeEllipse:
		return "ellipse"
	case ShapePath:
		return "path"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Primitive is a single drawable element. Circles use Center and RX, ellipses
// use Center, RX and RY, paths use Path.
type Primitive struct {
	Shape       Shape
	Center      Point
	RX, RY      float64
	Path        Path
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	Opacity     float64
	Transform   Transform
}

func circle(cx, cy, r float64, fill Paint) Primitive {
	return Primitive{Shape: ShapeCircle, Center: Point{cx, cy}, RX: r, RY: r, Fill: fill, Opacity: 1}
}

func ellipse(cx, cy, rx, ry float64, fill Paint) Primitive {
	return Primitive{Shape: ShapeEllipse, Center: Point{cx, cy}, RX: rx, RY: ry, Fill: fill, Opacity: 1}
}

func filled(p Path, fill Paint) Primitive {
	return Primitive{Shape: ShapePath, Path: p, Fill: fill, Opacity: 1}
}

func stroked(p Path, stroke Paint, width float64) Primitive {
	return Primitive{Shape: ShapePath, Path: p, Stroke: stroke, StrokeWidth: width, Opacity: 1}
}

func (p Primitive) withOpacity(o float64) Primitive {
	p.Opacity = o
	return p
}

// Placed returns the primitive's anchor after its transform: the centre for
// circles and ellipses, the start point for paths.
func (p Primitive) Placed() Point {
	if p.Shape == ShapePath {
		return p.Transform.Apply(p.Path.Start)
	}
	return p.Transform.Apply(p.Center)
}

// Group is a run of primitives sharing one opacity.
type Group struct {
	Opacity float64
	Items   []Primitive
}

func group(items ...Primitive) Group {
	return Group{Opacity: 1, Items: items}
}

// Sparkle is a decorative dot whose twinkle starts after Delay milliseconds.
type Sparkle struct {
	Dot   Primitive
	Delay int
}

// Gradient is the soft radial background: Inner at the focal point fading to
// Outer at the rim.
type Gradient struct {
	Inner, Outer Paint
	Focus        Point // percentages of the bounding box
}

// Illustration is a complete flower picture in the ViewBox coordinate space.
// Layers are listed in paint order.
type Illustration struct {
	Kind       Kind
	Background Gradient
	Disc       Primitive
	Sparkles   []Sparkle
	Stem       []Primitive
	BloomShift Point
	Bloom      []Group
}

// BloomPrimitives flattens the bloom groups in paint order.
func (ill Illustration) BloomPrimitives() []Primitive {
	var out []Primitive
	for _, g := range ill.Bloom {
		out = append(out, g.Items...)
	}
	return out
}

// Count returns the number of drawn primitives, sparkles and disc included.
func (ill Illustration) Count() int {
	return 1 + len(ill.Sparkles) + len(ill.Stem) + len(ill.BloomPrimitives())
}
