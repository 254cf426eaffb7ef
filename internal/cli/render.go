package cli

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/irdiagram/pkg/errors"
	"github.com/matzehuels/irdiagram/pkg/pipeline"
	"github.com/matzehuels/irdiagram/pkg/tree"
)

// renderOpts holds the command-line flags of the root command.
type renderOpts struct {
	path     string  // output file path (or base path for multiple outputs)
	formats  string  // comma-separated output formats
	vizType  string  // "boxes" or "nodelink"
	style    string  // "simple" or "handdrawn"
	height   float64 // render height of the document
	padding  float64 // margin as a fraction of the scene height
	config   string  // optional TOML file
	detailed bool    // child counts in nodelink labels
}

// runRender lays out the diagrams and writes one file per requested format,
// reporting the written files on out. changed reports whether a flag was set
// explicitly; such flags win over the config file.
func runRender(ctx context.Context, out io.Writer, opts renderOpts, changed func(name string) bool) error {
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{
		VizType:  opts.vizType,
		Formats:  parseFormats(opts.formats),
		Style:    opts.style,
		Height:   opts.height,
		Padding:  opts.padding,
		Detailed: opts.detailed,
		Logger:   logger,
	}

	roots := tree.Builtin()
	if opts.config != "" {
		cfg, err := pipeline.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg.Apply(&popts, map[string]bool{
			pipeline.KeyHeight:  changed("height"),
			pipeline.KeyPadding: changed("padding"),
			pipeline.KeyStyle:   changed("style"),
		})
		if len(cfg.Diagrams) == 0 {
			printWarning(out, "%s defines no diagrams, using the built-in ones", opts.config)
		}
		roots = cfg.Roots()
		logger.Infof("Loaded %s", opts.config)
	}

	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	paths, err := outputPaths(opts.path, popts.Formats)
	if err != nil {
		return err
	}

	nodes := 0
	for _, r := range roots {
		nodes += r.Count()
	}
	logger.Infof("Rendering %d diagrams (%d boxes) as %s", len(roots), nodes, strings.Join(popts.Formats, ", "))

	prog := newProgress(logger)
	artifacts, err := pipeline.Render(ctx, roots, popts)
	if err != nil {
		return err
	}

	for _, format := range popts.Formats {
		if err := writeFile(paths[format], artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Wrote %s (%d bytes)", paths[format], len(artifacts[format]))
	}
	prog.done("Rendered %d diagrams", len(roots))

	printSuccess(out, "Rendered %d diagrams", len(roots))
	for _, format := range popts.Formats {
		printFile(out, paths[format], len(artifacts[format]))
	}
	return nil
}

// outputPaths maps each format to its destination file. A single format is
// written to path as given; multiple formats share the base path derived by
// basePath.
func outputPaths(path string, formats []string) (map[string]string, error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, err
	}
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = path
		return paths, nil
	}
	base := basePath(path)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

// basePath strips a known format extension (.svg, .pdf, etc.) from path.
func basePath(path string) string {
	ext := filepath.Ext(path)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// writeFile writes data to a temporary file next to path and renames it into
// place, so a failed write never leaves a partial file.
func writeFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return writeFailed(path, err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return writeFailed(path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return writeFailed(path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return writeFailed(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return writeFailed(path, err)
	}
	return nil
}

// writeFailed reports a failed write of path. The cause keeps only the
// operating system reason; the temporary file name never reaches the user.
func writeFailed(path string, err error) error {
	switch e := err.(type) {
	case *fs.PathError:
		err = e.Err
	case *os.LinkError:
		err = e.Err
	}
	return errors.Wrap(errors.ErrCodeWriteFailed, err, "cannot write %s", path)
}
