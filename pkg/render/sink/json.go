package sink

import (
	"encoding/json"

	"github.com/matzehuels/irdiagram/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
	trees []TreeSize
}

// TreeSize records the laid out size of one root diagram.
type TreeSize struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WithJSONStyle records the style name in the JSON output.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONTrees records the per-root sizes in the JSON output.
func WithJSONTrees(trees []TreeSize) JSONOption {
	return func(r *jsonRenderer) { r.trees = trees }
}

type jsonOutput struct {
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Bounds     jsonBox         `json:"bounds"`
	Style      string          `json:"style,omitempty"`
	Trees      []TreeSize      `json:"trees,omitempty"`
	Primitives []jsonPrimitive `json:"primitives"`
}

type jsonBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonPrimitive struct {
	Kind      string  `json:"kind"`
	Box       jsonBox `json:"box"`
	Radius    float64 `json:"radius,omitempty"`
	Fill      string  `json:"fill"`
	Stroke    string  `json:"stroke"`
	LineWidth float64 `json:"line_width,omitempty"`
	Label     string  `json:"label,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
}

// RenderJSON exports the flattened scene as a pretty-printed JSON document:
// overall size, the bounding box, and every primitive in paint order with
// absolute coordinates and hex colors.
func RenderJSON(d scene.Diagram, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	env := d.Envelope()
	prims := scene.Flatten(d)
	out := jsonOutput{
		Width:      env.Width(),
		Height:     env.Height(),
		Bounds:     toJSONBox(env),
		Style:      r.style,
		Trees:      r.trees,
		Primitives: make([]jsonPrimitive, 0, len(prims)),
	}
	for _, p := range prims {
		out.Primitives = append(out.Primitives, jsonPrimitive{
			Kind:      p.Kind.String(),
			Box:       toJSONBox(p.Box),
			Radius:    p.Radius,
			Fill:      p.Fill.Hex(),
			Stroke:    p.Stroke.Hex(),
			LineWidth: p.LineWidth,
			Label:     p.Label,
			FontSize:  p.FontSize,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

func toJSONBox(b scene.Box) jsonBox {
	return jsonBox{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()}
}
