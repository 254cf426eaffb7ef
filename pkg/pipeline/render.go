package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/irdiagram/pkg/errors"
	"github.com/matzehuels/irdiagram/pkg/layout"
	"github.com/matzehuels/irdiagram/pkg/observability"
	"github.com/matzehuels/irdiagram/pkg/render/nodelink"
	"github.com/matzehuels/irdiagram/pkg/render/sink"
	"github.com/matzehuels/irdiagram/pkg/render/textree"
	"github.com/matzehuels/irdiagram/pkg/scene"
	"github.com/matzehuels/irdiagram/pkg/tree"
)

// Render generates output artifacts in the requested formats, keyed by
// format. Options must already be validated.
func Render(ctx context.Context, roots []tree.Node, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()

	nodes := 0
	for _, r := range roots {
		nodes += r.Count()
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, nodes)
	start := time.Now()

	var encode func(format string) ([]byte, error)
	if opts.IsNodelink() {
		encode = nodelinkEncoder(roots, opts)
	} else {
		encode = boxEncoder(roots, opts)
	}
	hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), nil)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hooks.OnRenderStart(ctx, format)
		start := time.Now()
		data, err := encode(format)
		if err != nil && errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, err
		}

		opts.Logger.Debugf("Generated %s: %d bytes", format, len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

// boxEncoder lays out every root once and returns an encoder for the shared
// scene.
func boxEncoder(roots []tree.Node, opts Options) func(string) ([]byte, error) {
	d, results := layout.Diagrams(roots...)

	sizes := make([]sink.TreeSize, len(results))
	for i, r := range results {
		sizes[i] = sink.TreeSize{Label: roots[i].Label, Width: r.Width, Height: r.Height}
		opts.Logger.Debugf("Laid out %q: %g x %g (%d nodes)", roots[i].Label, r.Width, r.Height, roots[i].Count())
	}
	env := d.Envelope()
	opts.Logger.Debugf("Composite scene: %g x %g", env.Width(), env.Height())

	return func(format string) ([]byte, error) {
		return renderBoxFormat(d, roots, sizes, format, opts)
	}
}

func renderBoxFormat(d scene.Diagram, roots []tree.Node, sizes []sink.TreeSize, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{
		sink.WithHeight(opts.Height),
		sink.WithPadding(opts.Padding),
		sink.WithStyle(opts.Style),
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(d, svgOpts...), nil
	case FormatPDF:
		return sink.RenderPDF(d, sink.WithPDFSVGOptions(svgOpts...))
	case FormatPNG:
		return sink.RenderPNG(d, sink.WithPNGSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(d, sink.WithJSONStyle(opts.Style), sink.WithJSONTrees(sizes))
	case FormatText:
		return textree.Render(roots)
	default:
		return nil, ValidateCombination(VizTypeBoxes, format)
	}
}

// nodelinkEncoder builds one DOT graph of all roots and returns an encoder
// for it.
func nodelinkEncoder(roots []tree.Node, opts Options) func(string) ([]byte, error) {
	dot := nodelink.ToDOT(roots, nodelink.Options{Detailed: opts.Detailed})
	opts.Logger.Debugf("Generated DOT: %d bytes", len(dot))

	return func(format string) ([]byte, error) {
		switch format {
		case FormatSVG:
			return nodelink.RenderSVG(dot)
		case FormatPNG:
			return nodelink.RenderPNG(dot, 2.0)
		case FormatPDF:
			return nodelink.RenderPDF(dot)
		case FormatDOT:
			return []byte(dot), nil
		case FormatText:
			return textree.Render(roots)
		default:
			return nil, ValidateCombination(VizTypeNodelink, format)
		}
	}
}
