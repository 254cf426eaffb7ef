package tree_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/irdiagram/pkg/tree"
)

func ExampleNode_Walk() {
	tree.Function().Walk(func(n tree.Node, depth int) bool {
		fmt.Println(strings.Repeat("  ", depth) + n.Label)
		return true
	})
	// Output:
	// Function
	//   [Argument]*
	//   [Entry Basic Block]*
	//   [Basic Block]*
}
