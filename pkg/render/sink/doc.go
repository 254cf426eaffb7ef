// Package sink provides output format renderers for composed diagrams.
//
// # Overview
//
// A "sink" transforms a [scene.Diagram] into a final output format. Every
// sink works on the flattened primitives from [scene.Flatten], so the same
// scene renders identically in each format:
//
//   - SVG: Scalable vector graphics at a fixed render height
//   - JSON: Primitive geometry export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
//	svg := sink.RenderSVG(d,
//	    sink.WithHeight(50),
//	    sink.WithStyle(styles.Handdrawn),
//	)
//
// The height attribute is the render height; the width attribute follows the
// aspect ratio of the content plus padding.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] first generate SVG, then convert it via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/matzehuels/irdiagram/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/irdiagram/pkg/render.ToPNG
package sink
