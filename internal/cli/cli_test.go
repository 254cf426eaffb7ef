package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandRenders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ir.svg")
	if err := execute(t, "--path", path); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("output is not an SVG document: %.40s", data)
	}
}

func TestRootCommandFlags(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "ir")
	err := execute(t, "--path", base, "-t", "nodelink", "-f", "dot,txt", "--detailed")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), "(3 children)") {
		t.Error("--detailed should add child counts to labels")
	}
	if _, err := os.Stat(base + ".txt"); err != nil {
		t.Error("txt output missing")
	}
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing path", nil},
		{"positional argument", []string{"--path", "x.svg", "extra"}},
		{"bad style", []string{"--path", "x.svg", "--style", "fancy"}},
		{"bad type", []string{"--path", "x.svg", "--type", "tower"}},
		{"unsupported combination", []string{"--path", "x.dot", "--format", "dot"}},
		{"negative height", []string{"--path", "x.svg", "--height", "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&out)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), "irdiagram") {
				t.Errorf("completion %s script does not mention irdiagram", shell)
			}
		})
	}

	if err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should be rejected")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}
