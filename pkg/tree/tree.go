// Package tree defines the labeled, colored trees drawn by irdiagram.
//
// A [Node] is a plain value: a label, a background and border color, and an
// ordered list of children. Trees are finite and acyclic by construction; a
// node owns its children and nothing is shared between nodes.
//
// The three built-in diagrams ([Module], [Function], [BasicBlock]) describe
// the nesting of an LLVM-style compilation unit. Custom trees can be decoded
// from TOML through the pipeline package.
package tree

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/irdiagram/pkg/errors"
)

// Color is an RGB color value used to fill and stroke drawing primitives.
type Color = colorful.Color

// Named colors used by the built-in diagrams.
var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 1, G: 1, B: 1}
	Red   = Color{R: 1, G: 0, B: 0}
	Green = Color{R: 0, G: 1, B: 0}
	Gold  = Color{R: 1, G: 1, B: 0}
	Blue  = Color{R: 0, G: 0, B: 1}
)

var namedColors = map[string]Color{
	"black": Black,
	"white": White,
	"red":   Red,
	"green": Green,
	"gold":  Gold,
	"blue":  Blue,
}

// ParseColor parses a "#rrggbb" hex string or one of the named colors
// (black, white, red, green, gold, blue). Names are case-insensitive.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	return c, nil
}

// Node is a single box in a diagram.
type Node struct {
	Label      string
	Background Color
	Border     Color
	Children   []Node
}

// New returns a node with the given label, colors and children.
func New(label string, background, border Color, children ...Node) Node {
	return Node{Label: label, Background: background, Border: border, Children: children}
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// Count returns the number of nodes in the tree rooted at n, including n.
func (n Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Depth returns the number of levels in the tree. A leaf has depth 1.
func (n Node) Depth() int {
	deepest := 0
	for _, c := range n.Children {
		deepest = max(deepest, c.Depth())
	}
	return deepest + 1
}

// Walk visits n and its descendants in pre-order. The root has depth 0.
// Returning false from fn skips the children of the visited node.
func (n Node) Walk(fn func(n Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}
