package tree

import "fmt"

// Traverse walks an already-built Tree in the requested order, emitting one
// Step per visited node with the accumulated output so far. The recursive
// orders are simulated with an explicit stack so each visit is a discrete
// step in true execution order; level order uses a FIFO queue.
//
// Validation order:
//  1. tr must be a non-empty built tree   (ErrNilTree)
//  2. algorithm must be a traversal key   (ErrUnknownAlgorithm)
func Traverse(tr *Tree, algorithm string) ([]Step, error) {
	if tr == nil || len(tr.Nodes) == 0 {
		return nil, ErrNilTree
	}

	w := &traverser{tree: tr}
	w.emit(fmt.Sprintf("start %s traversal", algorithm), NoNode)

	switch algorithm {
	case InOrder:
		w.inOrder()
	case PreOrder:
		w.preOrder()
	case PostOrder:
		w.postOrder()
	case LevelOrder:
		w.levelOrder()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	w.emit("traversal complete", NoNode)
	w.steps[len(w.steps)-1].IsComplete = true

	return w.steps, nil
}

// traverser accumulates the output sequence and the trace.
type traverser struct {
	tree       *Tree
	output     []int
	operations int
	steps      []Step
}

// inOrder: descend left as deep as possible, visit, then take the right
// subtree. The stack holds the path of unvisited ancestors.
func (w *traverser) inOrder() {
	stack := make([]int, 0, len(w.tree.Nodes))
	cur := 0
	for cur != NoChild || len(stack) > 0 {
		for cur != NoChild {
			stack = append(stack, cur)
			cur = w.tree.Nodes[cur].Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.visit(cur)
		cur = w.tree.Nodes[cur].Right
	}
}

// preOrder: visit on first touch, then explore left before right (right is
// pushed first so left pops first).
func (w *traverser) preOrder() {
	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.visit(cur)
		if r := w.tree.Nodes[cur].Right; r != NoChild {
			stack = append(stack, r)
		}
		if l := w.tree.Nodes[cur].Left; l != NoChild {
			stack = append(stack, l)
		}
	}
}

// postOrder: two-phase frames. A node is expanded once (children pushed),
// then visited when it resurfaces.
func (w *traverser) postOrder() {
	type frame struct {
		idx      int
		expanded bool
	}
	stack := []frame{{idx: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.expanded {
			w.visit(f.idx)
			continue
		}
		stack = append(stack, frame{idx: f.idx, expanded: true})
		if r := w.tree.Nodes[f.idx].Right; r != NoChild {
			stack = append(stack, frame{idx: r})
		}
		if l := w.tree.Nodes[f.idx].Left; l != NoChild {
			stack = append(stack, frame{idx: l})
		}
	}
}

// levelOrder: FIFO queue, children enqueued left before right.
func (w *traverser) levelOrder() {
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		w.visit(cur)
		if l := w.tree.Nodes[cur].Left; l != NoChild {
			queue = append(queue, l)
		}
		if r := w.tree.Nodes[cur].Right; r != NoChild {
			queue = append(queue, r)
		}
	}
}

// visit appends the node's value to the output and emits the step.
func (w *traverser) visit(idx int) {
	w.output = append(w.output, w.tree.Nodes[idx].Value)
	w.operations++
	w.emit(fmt.Sprintf("visit node %d", w.tree.Nodes[idx].Value), idx)
}

// emit appends one Step snapshotting tree and output so far.
func (w *traverser) emit(op string, visiting int) {
	nodes := make([]Node, len(w.tree.Nodes))
	copy(nodes, w.tree.Nodes)
	out := make([]int, len(w.output))
	copy(out, w.output)

	w.steps = append(w.steps, Step{
		Nodes:      nodes,
		Visiting:   visiting,
		Output:     out,
		Operations: w.operations,
		Operation:  op,
	})
}
