package flower

import (
	"bytes"
	"fmt"
	"strconv"
)

// twinkle is the sparkle animation length.
const twinkle = "2.4s"

// GradientID is the id of the background gradient inside the document. It
// carries the kind so several flowers can share one host page.
func (ill Illustration) GradientID() string {
	return "cg-bg-" + ill.Kind.String()
}

// SVG encodes the illustration as a standalone SVG document with no external
// references.
func (ill Illustration) SVG() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" data-flower="%s">`,
		num(ViewBox), num(ViewBox), num(ViewBox), num(ViewBox), ill.Kind)
	b.WriteString("\n")

	bg := ill.Background
	fmt.Fprintf(&b, `<defs><radialGradient id="%s" cx="%s%%" cy="%s%%" r="50%%">`, ill.GradientID(), num(bg.Focus.X), num(bg.Focus.Y))
	writeStop(&b, "0%", bg.Inner)
	writeStop(&b, "100%", bg.Outer)
	b.WriteString("</radialGradient></defs>\n")

	disc := ill.Disc
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="url(#%s)"%s/>`,
		num(disc.Center.X), num(disc.Center.Y), num(disc.RX), ill.GradientID(), opacityAttr("opacity", disc.Opacity))
	b.WriteString("\n")

	for _, s := range ill.Sparkles {
		b.WriteString(`<g class="spark">`)
		writePrimitive(&b, s.Dot, fmt.Sprintf(
			`<animate attributeName="opacity" values="1;0.25;1" dur="%s" begin="%dms" repeatCount="indefinite"/>`,
			twinkle, s.Delay))
		b.WriteString("</g>\n")
	}

	b.WriteString(`<g class="stem">`)
	for _, p := range ill.Stem {
		writePrimitive(&b, p, "")
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<g class="bloom" transform="translate(%s %s)">`, num(ill.BloomShift.X), num(ill.BloomShift.Y))
	for _, g := range ill.Bloom {
		fmt.Fprintf(&b, "<g%s>", opacityAttr("opacity", g.Opacity))
		for _, p := range g.Items {
			writePrimitive(&b, p, "")
		}
		b.WriteString("</g>")
	}
	b.WriteString("</g>\n</svg>\n")
	return b.Bytes()
}

func writeStop(b *bytes.Buffer, offset string, p Paint) {
	fmt.Fprintf(b, `<stop offset="%s" stop-color="%s"%s/>`, offset, p.Color, opacityAttr("stop-opacity", p.Opacity))
}

func writePrimitive(b *bytes.Buffer, p Primitive, inner string) {
	switch p.Shape {
	case ShapeCircle:
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s"`, num(p.Center.X), num(p.Center.Y), num(p.RX))
	case ShapeEllipse:
		fmt.Fprintf(b, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s"`, num(p.Center.X), num(p.Center.Y), num(p.RX), num(p.RY))
	case ShapePath:
		fmt.Fprintf(b, `<path d="%s"`, pathData(p.Path))
	}

	if p.Fill.None() {
		b.WriteString(` fill="none"`)
	} else {
		fmt.Fprintf(b, ` fill="%s"%s`, p.Fill.Color, opacityAttr("fill-opacity", p.Fill.Opacity))
	}
	if !p.Stroke.None() {
		fmt.Fprintf(b, ` stroke="%s"%s stroke-width="%s" stroke-linecap="round"`,
			p.Stroke.Color, opacityAttr("stroke-opacity", p.Stroke.Opacity), num(p.StrokeWidth))
	}
	b.WriteString(opacityAttr("opacity", p.Opacity))
	if !p.Transform.Identity() {
		t := p.Transform
		fmt.Fprintf(b, ` transform="rotate(%s %s %s) translate(%s %s)"`,
			num(t.Rotate), num(t.Pivot.X), num(t.Pivot.Y), num(t.Shift.X), num(t.Shift.Y))
	}

	if inner == "" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	b.WriteString(inner)
	fmt.Fprintf(b, "</%s>", p.Shape)
}

func pathData(p Path) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "M%s %s", num(p.Start.X), num(p.Start.Y))
	for _, s := range p.Segments {
		fmt.Fprintf(&b, " C%s %s, %s %s, %s %s",
			num(s.C1.X), num(s.C1.Y), num(s.C2.X), num(s.C2.Y), num(s.End.X), num(s.End.Y))
	}
	if p.Closed {
		b.WriteString("Z")
	}
	return b.String()
}

// opacityAttr renders name="v" only when v is below one.
func opacityAttr(name string, v float64) string {
	if v >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(v))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
