// Package tree defines the node/step types, algorithm keys, and sentinel
// errors for the tree trace generators.
package tree

import "errors"

// Sentinel errors for trace generation.
var (
	// ErrEmptyInput is returned when a build receives no values.
	ErrEmptyInput = errors.New("tree: input values must not be empty")

	// ErrNilTree is returned when a traversal is requested without a
	// previously built tree.
	ErrNilTree = errors.New("tree: traversal requires a built tree")

	// ErrUnknownAlgorithm is returned for an algorithm key with no generator.
	ErrUnknownAlgorithm = errors.New("tree: unknown algorithm key")
)

// Algorithm keys.
const (
	BSTInsert  = "bst_insert"
	HeapBuild  = "heap_build"
	InOrder    = "inorder"
	PreOrder   = "preorder"
	PostOrder  = "postorder"
	LevelOrder = "levelorder"
)

// NoChild marks an absent child link; NoNode marks a step with no node
// under the cursor.
const (
	NoChild = -1
	NoNode  = -1
)

// Node is one tree node in the flat representation: children are indices
// into the owning slice, NoChild when absent.
type Node struct {
	Value       int
	Left, Right int
}

// Tree is a binary search tree built by BuildBST. Nodes[0] is the root.
// A Tree is immutable once returned; traversals only read it.
type Tree struct {
	Nodes []Node
}

// Size returns the number of nodes.
func (t *Tree) Size() int { return len(t.Nodes) }

// Step is one immutable snapshot of tree-operation state.
//
//   - Nodes: the tree as built so far (BST insert and traversals).
//   - Heap: the backing array (heap build only).
//   - Visiting: index of the node under the cursor, NoNode when idle.
//   - Comparing: node/array indices compared by this step.
//   - Output: accumulated traversal emission so far (traversals only).
type Step struct {
	Nodes     []Node
	Heap      []int
	Visiting  int
	Comparing []int
	Output    []int

	Operation   string
	Comparisons int
	Operations  int
	IsComplete  bool
}

// Traversals returns the traversal keys in stable order.
func Traversals() []string {
	return []string{InOrder, PreOrder, PostOrder, LevelOrder}
}
