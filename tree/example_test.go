package tree_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/tree"
)

// Build a BST and walk it in order; the final step carries the full
// traversal output, which for a BST is the sorted input.
func ExampleTraverse() {
	_, tr, err := tree.BuildBST([]int{8, 3, 10, 1, 6})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	steps, err := tree.Traverse(tr, tree.InOrder)
	if err != nil {
		fmt.Println("traverse:", err)
		return
	}

	final := steps[len(steps)-1]
	fmt.Println(final.Output)
	// Output: [1 3 6 8 10]
}
