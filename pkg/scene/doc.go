// Package scene provides immutable vector drawing primitives and the
// operations used to compose them.
//
// Every [Diagram] is positioned relative to its own local origin and has an
// envelope: the bounding [Box] used when the diagram is placed next to
// others. Shapes are centered on the origin when created. Composition never
// mutates its inputs:
//
//	box := scene.Rect(20, 2, 0.1).Fill(white).Stroke(red).LineWidth(0.2)
//	label := scene.Text("Module", 1).Fill(black)
//	d := scene.Overlay(box, label)
//
//	column := scene.VCat(1, a, b, c) // a on top, each next one 1 unit below
//	row := scene.CenterXY(scene.HCat(1, x, y))
//
// [Flatten] resolves a composed diagram into [Primitive] values with absolute
// coordinates, in paint order. Encoders in render/sink consume primitives and
// never need to know how the scene was built.
//
// The coordinate system is y-down, matching SVG.
package scene
