// Package nodelink renders diagram trees as traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// every tree node appears as a box with an arrow to each of its children. It
// is an alternative to the nested box view for readers who prefer explicit
// edges.
//
// # Usage
//
// Convert trees to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(tree.Builtin(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # DOT Format
//
// Node identifiers are derived from the position of the node in its tree
// ("n0", "n0_1", "n0_1_2", ...), so duplicate labels stay distinct. Fill and
// outline colors come from the node's background and border colors.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
