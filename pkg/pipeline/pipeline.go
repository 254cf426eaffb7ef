// Package pipeline provides the layout and render pipeline for irdiagram.
//
// The CLI and tests share this package so that every entry point lays out
// and encodes diagrams the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute the nested box scene for each tree ([layout.Diagrams])
//  2. Render: Encode the scene, or the trees directly, in each requested format
//
// # Usage
//
//	opts := pipeline.Options{Formats: []string{"svg", "json"}}
//	if err := opts.ValidateAndSetDefaults(); err != nil {
//	    return err
//	}
//	artifacts, err := pipeline.Render(ctx, tree.Builtin(), opts)
//	svg := artifacts["svg"]
//
// [layout.Diagrams]: github.com/matzehuels/irdiagram/pkg/layout.Diagrams
package pipeline

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/irdiagram/pkg/errors"
	"github.com/matzehuels/irdiagram/pkg/render/sink"
	"github.com/matzehuels/irdiagram/pkg/render/styles"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultHeight is the fixed render height of the SVG document.
	DefaultHeight = sink.DefaultHeight

	// DefaultPadding is the margin around the scene as a fraction of its height.
	DefaultPadding = sink.DefaultPadding

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.Simple

	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeBoxes
)

// Visualization types.
const (
	VizTypeBoxes    = "boxes"    // nested containers
	VizTypeNodelink = "nodelink" // Graphviz node-link diagram
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatText: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeBoxes:    true,
	VizTypeNodelink: true,
}

// supportedFormats lists the formats each visualization type can produce.
var supportedFormats = map[string][]string{
	VizTypeBoxes:    {FormatSVG, FormatPDF, FormatPNG, FormatJSON, FormatText},
	VizTypeNodelink: {FormatSVG, FormatPDF, FormatPNG, FormatDOT, FormatText},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	VizType string   `json:"viz_type,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Padding float64  `json:"padding,omitempty"`

	// Nodelink options
	Detailed bool `json:"detailed,omitempty"` // child counts in node labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, pdf, png, json, dot, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !styles.Valid(style) {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid type: %q (must be one of: boxes, nodelink)", vizType)
	}
	return nil
}

// ValidateCombination checks that vizType can produce format.
func ValidateCombination(vizType, format string) error {
	if !slices.Contains(supportedFormats[vizType], format) {
		return errors.New(errors.ErrCodeUnsupported,
			"%s output cannot produce %s (supported: %s)",
			vizType, format, strings.Join(supportedFormats[vizType], ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in zero-valued fields.
func (o *Options) SetDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks every option. Padding of zero is valid; SetDefaults does
// not touch it, so callers wanting the default padding set it explicitly.
func (o *Options) Validate() error {
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := ValidateCombination(o.VizType, f); err != nil {
			return err
		}
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "height must be positive, got %v", o.Height)
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding cannot be negative, got %v", o.Padding)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates the result.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}
