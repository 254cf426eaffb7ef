package pipeline

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/irdiagram/pkg/errors"
	"github.com/matzehuels/irdiagram/pkg/tree"
)

// Config is the decoded form of a diagram file.
//
//	[render]
//	height = 80
//	style = "handdrawn"
//
//	[[diagram]]
//	label = "Module"
//	background = "white"
//	border = "#ff0000"
//
//	  [[diagram.children]]
//	  label = "Target Information"
//	  background = "gold"
//	  border = "red"
//
// Every [[diagram]] table is one root. When the file has none, the built-in
// diagrams are used.
type Config struct {
	Height   *float64
	Padding  *float64
	Style    string
	Diagrams []tree.Node
}

// Config keys that can be overridden from the command line.
const (
	KeyHeight  = "height"
	KeyPadding = "padding"
	KeyStyle   = "style"
)

type fileConfig struct {
	Render   fileRender `toml:"render"`
	Diagrams []fileNode `toml:"diagram"`
}

type fileRender struct {
	Height  *float64 `toml:"height"`
	Padding *float64 `toml:"padding"`
	Style   string   `toml:"style"`
}

type fileNode struct {
	Label      string     `toml:"label"`
	Background string     `toml:"background"`
	Border     string     `toml:"border"`
	Children   []fileNode `toml:"children"`
}

// LoadConfig reads and decodes the diagram file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes a diagram file. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg := Config{
		Height:  fc.Render.Height,
		Padding: fc.Render.Padding,
		Style:   fc.Render.Style,
	}
	if cfg.Style != "" {
		if err := ValidateStyle(cfg.Style); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.style")
		}
	}
	if cfg.Height != nil && *cfg.Height <= 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "render.height must be positive, got %v", *cfg.Height)
	}
	if cfg.Padding != nil && *cfg.Padding < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "render.padding cannot be negative, got %v", *cfg.Padding)
	}

	for i, fn := range fc.Diagrams {
		n, err := fn.toNode("diagram[" + strconv.Itoa(i) + "]")
		if err != nil {
			return Config{}, err
		}
		cfg.Diagrams = append(cfg.Diagrams, n)
	}
	return cfg, nil
}

func (fn fileNode) toNode(path string) (tree.Node, error) {
	bg, err := colorOr(fn.Background, tree.White)
	if err != nil {
		return tree.Node{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s.background", path)
	}
	border, err := colorOr(fn.Border, tree.Black)
	if err != nil {
		return tree.Node{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s.border", path)
	}

	n := tree.New(fn.Label, bg, border)
	for i, c := range fn.Children {
		child, err := c.toNode(path + ".children[" + strconv.Itoa(i) + "]")
		if err != nil {
			return tree.Node{}, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func colorOr(s string, fallback tree.Color) (tree.Color, error) {
	if s == "" {
		return fallback, nil
	}
	return tree.ParseColor(s)
}

// Roots returns the configured diagrams, or the built-in ones when the file
// defines none.
func (c Config) Roots() []tree.Node {
	if len(c.Diagrams) == 0 {
		return tree.Builtin()
	}
	return c.Diagrams
}

// Apply copies render settings present in the file into o, except for keys
// listed in overridden.
func (c Config) Apply(o *Options, overridden map[string]bool) {
	if c.Height != nil && !overridden[KeyHeight] {
		o.Height = *c.Height
	}
	if c.Padding != nil && !overridden[KeyPadding] {
		o.Padding = *c.Padding
	}
	if c.Style != "" && !overridden[KeyStyle] {
		o.Style = c.Style
	}
}
