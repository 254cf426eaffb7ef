package scene

import (
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies the type of a flattened primitive.
type Kind int

const (
	KindRect Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Primitive is a drawable shape with absolute coordinates.
type Primitive struct {
	Kind      Kind
	Box       Box     // Absolute extents
	Radius    float64 // Corner radius (rects)
	Fill      Paint
	Stroke    Paint
	LineWidth float64
	Label     string  // Text content (text)
	FontSize  float64 // Font size in scene units (text)
}

// Diagram is a composable drawing positioned relative to its local origin.
type Diagram interface {
	// Envelope returns the bounding box used for composition.
	Envelope() Box
	flatten(dx, dy float64, out []Primitive) []Primitive
}

// Flatten returns the primitives of d in paint order, with absolute
// coordinates.
func Flatten(d Diagram) []Primitive {
	return d.flatten(0, 0, nil)
}

// =============================================================================
// Rectangles
// =============================================================================

// RectShape is a rounded rectangle centered on the origin.
type RectShape struct {
	w, h, radius float64
	fill, stroke Paint
	lineWidth    float64
}

// Rect returns a w by h rectangle with corner radius r, stroked black with
// a line width of 1 and no fill.
func Rect(w, h, r float64) RectShape {
	return RectShape{w: w, h: h, radius: r, stroke: Solid(colorful.Color{}), lineWidth: 1}
}

// Fill returns a copy of s filled with c.
func (s RectShape) Fill(c colorful.Color) RectShape { s.fill = Solid(c); return s }

// Stroke returns a copy of s outlined with c.
func (s RectShape) Stroke(c colorful.Color) RectShape { s.stroke = Solid(c); return s }

// LineWidth returns a copy of s with outline width w.
func (s RectShape) LineWidth(w float64) RectShape { s.lineWidth = w; return s }

// Envelope implements Diagram.
func (s RectShape) Envelope() Box { return CenteredBox(s.w, s.h) }

func (s RectShape) flatten(dx, dy float64, out []Primitive) []Primitive {
	return append(out, Primitive{
		Kind:      KindRect,
		Box:       s.Envelope().Translate(dx, dy),
		Radius:    s.radius,
		Fill:      s.fill,
		Stroke:    s.stroke,
		LineWidth: s.lineWidth,
	})
}

// =============================================================================
// Text
// =============================================================================

// Text metrics used to estimate the extents of a label.
const (
	CharWidth  = 0.55 // average glyph advance, in ems
	LineHeight = 1.0  // line box height, in ems

	defaultTextLineWidth = 0.01
)

// TextShape is a single line of text centered on the origin.
type TextShape struct {
	label        string
	size         float64
	fill, stroke Paint
	lineWidth    float64
}

// Text returns label drawn at font size size, filled black.
func Text(label string, size float64) TextShape {
	return TextShape{label: label, size: size, fill: Solid(colorful.Color{}), lineWidth: defaultTextLineWidth}
}

// Fill returns a copy of s filled with c.
func (s TextShape) Fill(c colorful.Color) TextShape { s.fill = Solid(c); return s }

// Stroke returns a copy of s outlined with c.
func (s TextShape) Stroke(c colorful.Color) TextShape { s.stroke = Solid(c); return s }

// Envelope implements Diagram. It is an estimate from the label length.
func (s TextShape) Envelope() Box {
	n := utf8.RuneCountInString(s.label)
	return CenteredBox(float64(n)*CharWidth*s.size, LineHeight*s.size)
}

func (s TextShape) flatten(dx, dy float64, out []Primitive) []Primitive {
	p := Primitive{
		Kind:     KindText,
		Box:      s.Envelope().Translate(dx, dy),
		Fill:     s.fill,
		Stroke:   s.stroke,
		Label:    s.label,
		FontSize: s.size,
	}
	if s.stroke.Valid {
		p.LineWidth = s.lineWidth
	}
	return append(out, p)
}

// FitFontSize returns the largest font size not above maxSize at which
// label fits inside a w by h box. The result is never below minFontSize.
func FitFontSize(label string, w, h, maxSize float64) float64 {
	const heightRatio = 0.6
	n := max(1, utf8.RuneCountInString(label))
	byHeight := h * heightRatio / LineHeight
	byWidth := w / (float64(n) * CharWidth)
	return max(minFontSize, min(maxSize, byHeight, byWidth))
}

const minFontSize = 0.1

// =============================================================================
// Composition
// =============================================================================

type enveloped struct {
	d   Diagram
	box Box
}

// WithEnvelope returns d with its envelope replaced by box. Drawing is
// unaffected; only composition sees the new bounds.
func WithEnvelope(d Diagram, box Box) Diagram { return enveloped{d: d, box: box} }

func (e enveloped) Envelope() Box { return e.box }

func (e enveloped) flatten(dx, dy float64, out []Primitive) []Primitive {
	return e.d.flatten(dx, dy, out)
}

type translated struct {
	d      Diagram
	dx, dy float64
}

// Translate returns d moved by (dx, dy).
func Translate(d Diagram, dx, dy float64) Diagram {
	if t, ok := d.(translated); ok {
		return translated{d: t.d, dx: t.dx + dx, dy: t.dy + dy}
	}
	return translated{d: d, dx: dx, dy: dy}
}

func (t translated) Envelope() Box { return t.d.Envelope().Translate(t.dx, t.dy) }

func (t translated) flatten(dx, dy float64, out []Primitive) []Primitive {
	return t.d.flatten(dx+t.dx, dy+t.dy, out)
}

type overlay []Diagram

// Overlay draws ds on top of each other in order; later diagrams paint over
// earlier ones. The envelope is the union of all envelopes.
func Overlay(ds ...Diagram) Diagram {
	return overlay(append([]Diagram(nil), ds...))
}

func (o overlay) Envelope() Box {
	if len(o) == 0 {
		return Box{}
	}
	b := o[0].Envelope()
	for _, d := range o[1:] {
		b = b.Union(d.Envelope())
	}
	return b
}

func (o overlay) flatten(dx, dy float64, out []Primitive) []Primitive {
	for _, d := range o {
		out = d.flatten(dx, dy, out)
	}
	return out
}

// VCat stacks ds top to bottom. The first diagram keeps its position; each
// following diagram is moved so that its top edge lies sep below the bottom
// edge of the one before it.
func VCat(sep float64, ds ...Diagram) Diagram {
	return cat(ds, func(prev, next Box) (float64, float64) {
		return 0, prev.MaxY + sep - next.MinY
	})
}

// HCat places ds left to right, sep apart, like [VCat] along the x axis.
func HCat(sep float64, ds ...Diagram) Diagram {
	return cat(ds, func(prev, next Box) (float64, float64) {
		return prev.MaxX + sep - next.MinX, 0
	})
}

func cat(ds []Diagram, offset func(prev, next Box) (float64, float64)) Diagram {
	if len(ds) == 0 {
		return overlay(nil)
	}
	placed := make(overlay, 0, len(ds))
	placed = append(placed, ds[0])
	prev := ds[0].Envelope()
	for _, d := range ds[1:] {
		dx, dy := offset(prev, d.Envelope())
		t := Translate(d, dx, dy)
		placed = append(placed, t)
		prev = t.Envelope()
	}
	return placed
}

// CenterXY moves d so that the center of its envelope is at the origin.
func CenterXY(d Diagram) Diagram {
	b := d.Envelope()
	return Translate(d, -b.CenterX(), -b.CenterY())
}
