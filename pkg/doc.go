// Package pkg provides the core libraries for irdiagram.
//
// # Overview
//
// Irdiagram draws the nesting of a compiler IR (a module contains functions,
// a function contains basic blocks) as labeled boxes inside boxes. The pkg
// directory is organized into these areas:
//
//  1. [tree] - The labeled, colored trees and the built-in diagrams
//  2. [layout] - Bottom-up box layout of a tree
//  3. [scene] - Vector primitives and their composition
//  4. [render] - Encoders (SVG, PDF, PNG, JSON, DOT, text)
//  5. [pipeline] - Orchestration (config → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	Built-in trees or TOML config
//	         ↓
//	    [layout] package (nested boxes per tree)
//	         ↓
//	    [scene] package (side-by-side composite, centered)
//	         ↓
//	    [render/sink] package (SVG/PDF/PNG/JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/irdiagram/pkg/layout"
//	    "github.com/matzehuels/irdiagram/pkg/render/sink"
//	    "github.com/matzehuels/irdiagram/pkg/tree"
//	)
//
//	d, _ := layout.Diagrams(tree.Builtin()...)
//	svg := sink.RenderSVG(d, sink.WithHeight(50))
//
// # Supporting Packages
//
// [errors] defines coded errors shared by every package. [observability]
// exposes pipeline hooks for timing. [buildinfo] carries version information
// set at link time. [fonts] names the font families used in SVG output.
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/tree
// [layout]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/layout
// [scene]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/buildinfo
// [fonts]: https://pkg.go.dev/github.com/matzehuels/irdiagram/pkg/fonts
package pkg
