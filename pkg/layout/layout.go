// Package layout computes the nested box drawings for diagram trees.
//
// Layout is strictly bottom-up: a leaf has a fixed size, and every internal
// node is sized from its children plus fixed padding and a header allowance
// for its own label. No constraint solving is needed because a tree has no
// cross references.
//
//	r := layout.Layout(tree.BasicBlock())
//	fmt.Println(r.Width, r.Height) // 21 13
//
// Layout never renders; the returned [Result] carries the composed
// [scene.Diagram] for an encoder in render/sink.
package layout

import (
	"github.com/matzehuels/irdiagram/pkg/scene"
	"github.com/matzehuels/irdiagram/pkg/tree"
)

// Layout constants, in scene units.
const (
	LeafWidth  = 20.0
	LeafHeight = 2.0

	LineWidth = 0.2 // container outline width

	Gap     = 1.0 // vertical gap between stacked elements, and between diagrams
	Padding = 1.0 // added to both dimensions of a container

	// HeaderAllowance is extra container height reserved for the label
	// header above the children.
	HeaderAllowance = 4.0

	LabelScale    = 0.9  // leaf labels fit the container shrunk to this factor
	LabelFontSize = 1.0  // font size of every label
	RadiusDivisor = 20.0 // corner radius is min(width, height) / RadiusDivisor
)

// Result is the size and drawing of a laid out node.
type Result struct {
	Width, Height float64
	Drawing       scene.Diagram
}

// Layout lays out n and its descendants.
func Layout(n tree.Node) Result {
	if n.IsLeaf() {
		return layoutLeaf(n)
	}
	return layoutInternal(n)
}

func layoutLeaf(n tree.Node) Result {
	w, h := LeafWidth, LeafHeight
	box := container(n, w, h)

	bounds := box.Envelope().Scale(LabelScale)
	size := scene.FitFontSize(n.Label, bounds.Width(), bounds.Height(), LabelFontSize)
	label := scene.WithEnvelope(text(n.Label, size), bounds)

	return Result{Width: w, Height: h, Drawing: scene.Overlay(box, label)}
}

func layoutInternal(n tree.Node) Result {
	children := make([]scene.Diagram, 0, len(n.Children)+1)
	var w, sumH float64
	for _, c := range n.Children {
		r := Layout(c)
		w = max(w, r.Width)
		sumH += r.Height
		children = append(children, r.Drawing)
	}
	h := sumH + (Gap*float64(len(n.Children)) - 1)

	header := scene.WithEnvelope(text(n.Label, LabelFontSize), scene.CenteredBox(LeafWidth, LeafHeight))
	content := scene.VCat(Gap, append([]scene.Diagram{header}, children...)...)

	pw, ph := w+Padding, h+Padding+HeaderAllowance
	box := container(n, pw, ph)

	return Result{Width: pw, Height: ph, Drawing: scene.Overlay(box, scene.CenterXY(content))}
}

func container(n tree.Node, w, h float64) scene.RectShape {
	return scene.Rect(w, h, min(w, h)/RadiusDivisor).
		Fill(n.Background).
		Stroke(n.Border).
		LineWidth(LineWidth)
}

func text(label string, size float64) scene.Diagram {
	return scene.Text(label, size).Fill(tree.Black).Stroke(tree.Black)
}

// Diagrams lays out each root independently, places the drawings left to
// right Gap apart and centers the composite on its bounding box. The
// per-root results are returned in input order.
func Diagrams(roots ...tree.Node) (scene.Diagram, []Result) {
	results := make([]Result, 0, len(roots))
	drawings := make([]scene.Diagram, 0, len(roots))
	for _, n := range roots {
		r := Layout(n)
		results = append(results, r)
		drawings = append(drawings, r.Drawing)
	}
	return scene.CenterXY(scene.HCat(Gap, drawings...)), results
}
