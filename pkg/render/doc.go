// Package render provides format conversion for irdiagram outputs.
//
// # Overview
//
// The renderers themselves live in subpackages:
//
//   - [sink]: Nested box scenes as SVG, PDF, PNG, or JSON
//   - [nodelink]: Node-link diagrams through Graphviz
//   - [textree]: Indented text trees
//   - [styles]: Visual style names and their font families
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both the box and node-link
// renderers use them.
//
//	svg := sink.RenderSVG(d)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Use [ConverterAvailable] to check for rsvg-convert before requesting PDF
// or PNG output.
//
// [sink]: github.com/matzehuels/irdiagram/pkg/render/sink
// [nodelink]: github.com/matzehuels/irdiagram/pkg/render/nodelink
// [textree]: github.com/matzehuels/irdiagram/pkg/render/textree
// [styles]: github.com/matzehuels/irdiagram/pkg/render/styles
package render
