package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/irdiagram/pkg/errors"
	"github.com/matzehuels/irdiagram/pkg/layout"
)

const sampleConfig = `
[render]
height = 80.0
padding = 0.1
style = "handdrawn"

[[diagram]]
label = "Loop"
background = "white"
border = "#0000ff"

  [[diagram.children]]
  label = "Header"
  background = "gold"
  border = "blue"

  [[diagram.children]]
  label = "Body"

[[diagram]]
label = "Standalone"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Height == nil || *cfg.Height != 80 {
		t.Errorf("Height = %v, want 80", cfg.Height)
	}
	if cfg.Padding == nil || *cfg.Padding != 0.1 {
		t.Errorf("Padding = %v, want 0.1", cfg.Padding)
	}
	if cfg.Style != "handdrawn" {
		t.Errorf("Style = %q, want handdrawn", cfg.Style)
	}
	if len(cfg.Diagrams) != 2 {
		t.Fatalf("got %d diagrams, want 2", len(cfg.Diagrams))
	}

	loop := cfg.Diagrams[0]
	if loop.Label != "Loop" || loop.Border.Hex() != "#0000ff" || len(loop.Children) != 2 {
		t.Errorf("loop = %+v", loop)
	}
	if got := loop.Children[0].Background.Hex(); got != "#ffff00" {
		t.Errorf("header background = %s, want #ffff00", got)
	}
	body := loop.Children[1]
	if body.Background.Hex() != "#ffffff" || body.Border.Hex() != "#000000" {
		t.Errorf("body colors = %s/%s, want white/black defaults", body.Background.Hex(), body.Border.Hex())
	}

	if r := layout.Layout(loop); r.Width != 21 || r.Height != 10 {
		t.Errorf("loop layout = %v x %v, want 21 x 10", r.Width, r.Height)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"syntax", `[render`},
		{"unknown key", "[render]\nwidth = 10\n"},
		{"bad style", "[render]\nstyle = \"fancy\"\n"},
		{"zero height", "[render]\nheight = 0.0\n"},
		{"negative padding", "[render]\npadding = -1.0\n"},
		{"bad color", "[[diagram]]\nlabel = \"x\"\nborder = \"teal\"\n"},
		{"bad nested color", "[[diagram]]\nlabel = \"x\"\n[[diagram.children]]\nbackground = \"#zz0000\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.toml))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestConfigRoots(t *testing.T) {
	var empty Config
	if roots := empty.Roots(); len(roots) != 3 || roots[0].Label != "Module" {
		t.Errorf("empty config should fall back to built-in diagrams, got %d roots", len(roots))
	}

	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if roots := cfg.Roots(); len(roots) != 2 || roots[1].Label != "Standalone" {
		t.Errorf("Roots() = %d roots", len(roots))
	}
}

func TestConfigApply(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	o := Options{Height: 50, Padding: 0.05, Style: "simple"}
	cfg.Apply(&o, map[string]bool{KeyStyle: true})

	if o.Height != 80 || o.Padding != 0.1 {
		t.Errorf("file values not applied: %+v", o)
	}
	if o.Style != "simple" {
		t.Errorf("Style = %q, overridden flag should win", o.Style)
	}

	var none Config
	o = Options{Height: 50}
	none.Apply(&o, nil)
	if o.Height != 50 {
		t.Errorf("empty config changed Height to %v", o.Height)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagrams.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.Diagrams) != 2 {
		t.Errorf("got %d diagrams, want 2", len(cfg.Diagrams))
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing file error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
