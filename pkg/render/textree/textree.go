// Package textree renders diagram trees as indented plain-text trees.
//
//	Module
//	├── Target Information
//	├── Global Symbols
//	│   ├── [Global Variable]*
//	...
//
// Colors are dropped; only labels and nesting survive. Siblings that share a
// label stay separate lines, and empty labels print as "".
package textree

import (
	"bytes"
	"fmt"

	"github.com/ddddddO/gtree"

	"github.com/matzehuels/irdiagram/pkg/tree"
)

// Render writes each root as a text tree, separated by blank lines.
func Render(roots []tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	for i, r := range roots {
		if i > 0 {
			buf.WriteString("\n")
		}
		if err := gtree.OutputFromRoot(&buf, build(r)); err != nil {
			return nil, fmt.Errorf("render %q: %w", r.Label, err)
		}
	}
	return buf.Bytes(), nil
}

func build(n tree.Node) *gtree.Node {
	// gtree merges siblings with the same text unless duplicates are allowed.
	root := gtree.NewRoot(display(n.Label), gtree.WithDuplicationAllowed())
	addChildren(root, n.Children)
	return root
}

func addChildren(parent *gtree.Node, children []tree.Node) {
	for _, c := range children {
		addChildren(parent.Add(display(c.Label)), c.Children)
	}
}

// display keeps empty labels visible as a line of their own.
func display(label string) string {
	if label == "" {
		return `""`
	}
	return label
}
