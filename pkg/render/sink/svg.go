package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/irdiagram/pkg/render/styles"
	"github.com/matzehuels/irdiagram/pkg/scene"
)

// Defaults for SVG output.
const (
	DefaultHeight  = 50.0
	DefaultPadding = 0.05
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	height  float64
	padding float64
	style   string
}

// WithHeight sets the render height of the document. The width is derived
// from the aspect ratio.
func WithHeight(h float64) SVGOption { return func(r *svgRenderer) { r.height = h } }

// WithPadding sets the margin around the content as a fraction of the content
// height.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithStyle selects the visual style by name.
func WithStyle(s string) SVGOption { return func(r *svgRenderer) { r.style = s } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{height: DefaultHeight, padding: DefaultPadding, style: styles.Simple}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders d as a standalone SVG document.
func RenderSVG(d scene.Diagram, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	view := viewBox(d.Envelope(), r.padding)
	width, height := frameSize(view, r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(view.MinX), num(view.MinY), num(view.Width()), num(view.Height()), num(width), num(height))
	fmt.Fprintf(&buf, "  <style>text { font-family: %s; }</style>\n", styles.FontFamily(r.style))

	for _, p := range scene.Flatten(d) {
		switch p.Kind {
		case scene.KindRect:
			renderRect(&buf, p)
		case scene.KindText:
			renderText(&buf, p)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// viewBox pads the content envelope by padding times its height on every side.
func viewBox(env scene.Box, padding float64) scene.Box {
	if env.Width() <= 0 || env.Height() <= 0 {
		return scene.Box{MaxX: 1, MaxY: 1}
	}
	return env.Pad(padding * env.Height())
}

func frameSize(view scene.Box, height float64) (float64, float64) {
	return height * view.Width() / view.Height(), height
}

func renderRect(buf *bytes.Buffer, p scene.Primitive) {
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(p.Box.MinX), num(p.Box.MinY), num(p.Box.Width()), num(p.Box.Height()),
		num(p.Radius), num(p.Radius), p.Fill.Hex(), p.Stroke.Hex(), num(p.LineWidth))
}

func renderText(buf *bytes.Buffer, p scene.Primitive) {
	fmt.Fprintf(buf, `  <text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="central" fill="%s" stroke="%s" stroke-width="%s">%s</text>`+"\n",
		num(p.Box.CenterX()), num(p.Box.CenterY()), num(p.FontSize),
		p.Fill.Hex(), p.Stroke.Hex(), num(p.LineWidth), styles.EscapeXML(p.Label))
}

// num formats f with at most four decimals and no trailing zeros.
func num(f float64) string {
	r := math.Round(f*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
