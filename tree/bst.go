package tree

import "fmt"

// BuildBST inserts values left to right into an initially empty binary
// search tree, emitting one Step per comparison and per attachment, and
// returns both the trace and the finished Tree for later traversal runs.
// Duplicates descend to the right.
//
// Returns ErrEmptyInput for an empty slice.
func BuildBST(values []int) ([]Step, *Tree, error) {
	if len(values) == 0 {
		return nil, nil, ErrEmptyInput
	}

	b := &bstBuilder{tree: &Tree{Nodes: make([]Node, 0, len(values))}}
	b.emit("empty tree", NoNode, nil)

	for _, v := range values {
		b.insert(v)
	}

	b.emit(fmt.Sprintf("tree built, %d nodes", b.tree.Size()), NoNode, nil)
	b.steps[len(b.steps)-1].IsComplete = true

	return b.steps, b.tree, nil
}

// bstBuilder accumulates the trace while the tree grows.
type bstBuilder struct {
	tree        *Tree
	comparisons int
	operations  int
	steps       []Step
}

// insert walks from the root comparing at each node, then attaches v as a
// fresh leaf. Every comparison and the attachment are separate steps.
func (b *bstBuilder) insert(v int) {
	idx := len(b.tree.Nodes)
	node := Node{Value: v, Left: NoChild, Right: NoChild}

	if idx == 0 {
		b.tree.Nodes = append(b.tree.Nodes, node)
		b.operations++
		b.emit(fmt.Sprintf("insert %d as root", v), 0, nil)
		return
	}

	cur := 0
	for {
		b.comparisons++
		curVal := b.tree.Nodes[cur].Value
		if v < curVal {
			b.emit(fmt.Sprintf("%d < %d: go left", v, curVal), cur, []int{cur})
			if b.tree.Nodes[cur].Left == NoChild {
				b.tree.Nodes = append(b.tree.Nodes, node)
				b.tree.Nodes[cur].Left = idx
				break
			}
			cur = b.tree.Nodes[cur].Left
		} else {
			b.emit(fmt.Sprintf("%d >= %d: go right", v, curVal), cur, []int{cur})
			if b.tree.Nodes[cur].Right == NoChild {
				b.tree.Nodes = append(b.tree.Nodes, node)
				b.tree.Nodes[cur].Right = idx
				break
			}
			cur = b.tree.Nodes[cur].Right
		}
	}

	b.operations++
	b.emit(fmt.Sprintf("attach %d as leaf", v), idx, nil)
}

// emit appends one Step snapshotting the tree so far.
func (b *bstBuilder) emit(op string, visiting int, comparing []int) {
	nodes := make([]Node, len(b.tree.Nodes))
	copy(nodes, b.tree.Nodes)

	b.steps = append(b.steps, Step{
		Nodes:       nodes,
		Visiting:    visiting,
		Comparing:   comparing,
		Operation:   op,
		Comparisons: b.comparisons,
		Operations:  b.operations,
	})
}
