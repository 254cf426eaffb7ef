package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/irdiagram/pkg/scene"
	"github.com/matzehuels/irdiagram/pkg/tree"
)

func leaf(label string) tree.Node {
	return tree.New(label, tree.White, tree.Green)
}

func TestLayoutLeaf(t *testing.T) {
	tests := []struct {
		name string
		node tree.Node
	}{
		{"label", tree.New("Label", tree.White, tree.Green)},
		{"empty label", tree.New("", tree.Gold, tree.Red)},
		{"long label", tree.New("[Function Declaration]* with a much longer name", tree.White, tree.Blue)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Layout(tt.node)
			if r.Width != 20 || r.Height != 2 {
				t.Errorf("Layout() = (%v, %v), want (20, 2)", r.Width, r.Height)
			}
		})
	}
}

func TestLayoutInternal(t *testing.T) {
	tests := []struct {
		name          string
		node          tree.Node
		width, height float64
	}{
		{
			name:   "single child",
			node:   tree.New("P", tree.White, tree.Red, leaf("A")),
			width:  21,
			height: 2 + 0 + 1 + 4,
		},
		{
			name:   "two leaves",
			node:   tree.New("P", tree.White, tree.Red, leaf("A"), leaf("A")),
			width:  21,
			height: 10,
		},
		{
			name:   "basic block",
			node:   tree.BasicBlock(),
			width:  21,
			height: 13,
		},
		{
			name:   "function",
			node:   tree.Function(),
			width:  21,
			height: 13,
		},
		{
			name:   "module",
			node:   tree.Module(),
			width:  22,
			height: 24,
		},
		{
			name:   "empty label still reserves header",
			node:   tree.New("", tree.White, tree.Red, leaf("A"), leaf("B")),
			width:  21,
			height: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Layout(tt.node)
			if r.Width != tt.width || r.Height != tt.height {
				t.Errorf("Layout() = (%v, %v), want (%v, %v)", r.Width, r.Height, tt.width, tt.height)
			}
		})
	}
}

func TestLayoutFormula(t *testing.T) {
	// Mixed children: a nested container next to plain leaves.
	children := []tree.Node{leaf("a"), tree.Module(), leaf("b"), tree.Function()}
	n := tree.New("root", tree.White, tree.Blue, children...)

	var maxW, sumH float64
	for _, c := range children {
		r := Layout(c)
		maxW = max(maxW, r.Width)
		sumH += r.Height
	}
	k := float64(len(children))

	r := Layout(n)
	if want := maxW + 1; r.Width != want {
		t.Errorf("Width = %v, want %v", r.Width, want)
	}
	if want := sumH + (k - 1) + 1 + 4; r.Height != want {
		t.Errorf("Height = %v, want %v", r.Height, want)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	for _, n := range tree.Builtin() {
		a, b := Layout(n), Layout(n)
		if a.Width != b.Width || a.Height != b.Height {
			t.Errorf("%s: (%v, %v) != (%v, %v)", n.Label, a.Width, a.Height, b.Width, b.Height)
		}
		pa, pb := scene.Flatten(a.Drawing), scene.Flatten(b.Drawing)
		if len(pa) != len(pb) {
			t.Fatalf("%s: %d primitives != %d", n.Label, len(pa), len(pb))
		}
		for i := range pa {
			if pa[i] != pb[i] {
				t.Errorf("%s: primitive %d differs: %+v != %+v", n.Label, i, pa[i], pb[i])
			}
		}
	}
}

func TestLayoutLeafDrawing(t *testing.T) {
	n := tree.New("Label", tree.White, tree.Green)
	prims := scene.Flatten(Layout(n).Drawing)
	if len(prims) != 2 {
		t.Fatalf("got %d primitives, want 2", len(prims))
	}

	box, label := prims[0], prims[1]
	if box.Kind != scene.KindRect || label.Kind != scene.KindText {
		t.Fatalf("kinds = %v, %v; want rect, text", box.Kind, label.Kind)
	}
	if box.Box != scene.CenteredBox(20, 2) {
		t.Errorf("container box = %+v", box.Box)
	}
	if box.Radius != 0.1 {
		t.Errorf("radius = %v, want 0.1", box.Radius)
	}
	if box.LineWidth != LineWidth {
		t.Errorf("line width = %v, want %v", box.LineWidth, LineWidth)
	}
	if box.Fill.Hex() != "#ffffff" || box.Stroke.Hex() != "#00ff00" {
		t.Errorf("colors = %s/%s, want #ffffff/#00ff00", box.Fill.Hex(), box.Stroke.Hex())
	}
	if label.Label != "Label" || label.Fill.Hex() != "#000000" {
		t.Errorf("label = %q fill %s", label.Label, label.Fill.Hex())
	}
	if label.Box.CenterX() != 0 || label.Box.CenterY() != 0 {
		t.Errorf("label center = (%v, %v), want origin", label.Box.CenterX(), label.Box.CenterY())
	}
	if label.FontSize != LabelFontSize {
		t.Errorf("font size = %v, want %v", label.FontSize, LabelFontSize)
	}
}

func TestLayoutLeafLabelShrinks(t *testing.T) {
	n := leaf("an extremely long label that cannot possibly fit at full size")
	prims := scene.Flatten(Layout(n).Drawing)
	label := prims[1]
	if label.FontSize >= LabelFontSize {
		t.Fatalf("font size = %v, want below %v", label.FontSize, LabelFontSize)
	}
	if label.Box.Width() > LeafWidth*LabelScale+1e-9 {
		t.Errorf("label width %v exceeds %v", label.Box.Width(), LeafWidth*LabelScale)
	}
}

func TestLayoutInternalDrawing(t *testing.T) {
	r := Layout(tree.BasicBlock())
	prims := scene.Flatten(r.Drawing)

	// container, header, then (rect, text) per child
	if len(prims) != 2+2*3 {
		t.Fatalf("got %d primitives, want 8", len(prims))
	}
	if prims[0].Kind != scene.KindRect || prims[0].Box != scene.CenteredBox(21, 13) {
		t.Errorf("container = %+v", prims[0])
	}
	if want := 13.0 / 20; math.Abs(prims[0].Radius-0.65) > 1e-9 {
		t.Errorf("radius = %v, want %v", prims[0].Radius, want)
	}

	header := prims[1]
	if header.Kind != scene.KindText || header.Label != "Basic Block" {
		t.Fatalf("header = %+v", header)
	}
	if header.Box.CenterY() != -4.5 {
		t.Errorf("header center y = %v, want -4.5", header.Box.CenterY())
	}

	// Children are stacked below the header, one unit apart.
	wantTops := []float64{-2.5, 0.5, 3.5}
	for i, top := range wantTops {
		child := prims[2+2*i]
		if child.Box.MinY != top {
			t.Errorf("child %d top = %v, want %v", i, child.Box.MinY, top)
		}
		if child.Box.CenterX() != 0 {
			t.Errorf("child %d center x = %v, want 0", i, child.Box.CenterX())
		}
	}
}

func TestDiagrams(t *testing.T) {
	d, results := Diagrams(tree.Builtin()...)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	env := d.Envelope()
	if env.Width() != 66 || env.Height() != 24 {
		t.Errorf("composite = %v x %v, want 66 x 24", env.Width(), env.Height())
	}
	if env.CenterX() != 0 || env.CenterY() != 0 {
		t.Errorf("composite center = (%v, %v), want origin", env.CenterX(), env.CenterY())
	}
	for _, v := range []float64{env.MinX, env.MinY, env.MaxX, env.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite envelope %+v", env)
		}
	}
}

func TestDiagramsEmpty(t *testing.T) {
	d, results := Diagrams()
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if n := len(scene.Flatten(d)); n != 0 {
		t.Errorf("got %d primitives, want 0", n)
	}
}
