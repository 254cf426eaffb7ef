// Package cli implements the irdiagram command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/irdiagram/pkg/buildinfo"
	"github.com/matzehuels/irdiagram/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "irdiagram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The root command renders the
// diagrams itself; completion is the only subcommand.
func (c *CLI) RootCommand() *cobra.Command {
	opts := renderOpts{
		vizType: pipeline.DefaultVizType,
		style:   pipeline.DefaultStyle,
		height:  pipeline.DefaultHeight,
		padding: pipeline.DefaultPadding,
	}

	root := &cobra.Command{
		Use:   appName + " --path <file>",
		Short: "Irdiagram draws compiler IR structures as nested boxes",
		Long: `Irdiagram renders the nesting of a compilation unit (module, function,
basic block) as labeled, colored boxes inside boxes and writes the result as
SVG, PDF, PNG, JSON, DOT or a text tree.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), opts, cmd.Flags().Changed)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVar(&opts.path, "path", "", "output file (single format) or base path (multiple formats)")
	root.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), pdf, png, json, dot, txt (comma-separated)")
	root.Flags().StringVarP(&opts.vizType, "type", "t", opts.vizType, "visualization type: boxes (default), nodelink")
	root.Flags().StringVar(&opts.style, "style", opts.style, "visual style: simple (default), handdrawn")
	root.Flags().Float64Var(&opts.height, "height", opts.height, "render height of the output document")
	root.Flags().Float64Var(&opts.padding, "padding", opts.padding, "margin around the scene as a fraction of its height")
	root.Flags().StringVar(&opts.config, "config", "", "TOML file with render settings and custom diagrams")
	root.Flags().BoolVar(&opts.detailed, "detailed", false, "show child counts in node labels (nodelink)")
	_ = root.MarkFlagRequired("path")
	_ = root.MarkFlagFilename("path", "svg", "pdf", "png", "json", "dot", "txt")
	_ = root.MarkFlagFilename("config", "toml")

	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// Entries are trimmed and lowercased, and duplicates are dropped.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{pipeline.FormatSVG}
	}
	var formats []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats
}
