package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/algoviz/grid"
)

// entry is one frontier candidate. seq is a global insertion counter: it is
// the whole ordering for BFS and the final tie-breaker everywhere else, so
// identical boards always pop in identical order.
type entry struct {
	c       grid.Coord
	g, h, f int
	seq     int
}

// byInsertion pops in pure insertion order: a FIFO queue expressed as a
// heap, so all three algorithms share one frontier implementation.
func byInsertion(a, b entry) bool {
	return a.seq < b.seq
}

// byCost pops the lowest cost-so-far first, ties by insertion order.
func byCost(a, b entry) bool {
	if a.g != b.g {
		return a.g < b.g
	}

	return a.seq < b.seq
}

// byEstimate pops the lowest F = G + H first, ties by lower H (closer to
// the goal), then insertion order.
func byEstimate(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// frontier is a min-heap of entries under a pluggable ordering, with
// lazy decrease-key: improved candidates are pushed as duplicates and
// stale pops are skipped by the walker.
type frontier struct {
	entries []entry
	less    ordering
	nextSeq int
}

func newFrontier(less ordering) *frontier {
	return &frontier{less: less}
}

// push inserts a candidate, stamping it with the next insertion sequence.
func (f *frontier) push(c grid.Coord, g, h, est int) {
	heap.Push(f, entry{c: c, g: g, h: h, f: est, seq: f.nextSeq})
	f.nextSeq++
}

// pop removes and returns the minimum entry. Caller must check emptiness.
func (f *frontier) pop() entry {
	return heap.Pop(f).(entry)
}

func (f *frontier) empty() bool { return len(f.entries) == 0 }

// heap.Interface plumbing.

func (f *frontier) Len() int           { return len(f.entries) }
func (f *frontier) Less(i, j int) bool { return f.less(f.entries[i], f.entries[j]) }
func (f *frontier) Swap(i, j int)      { f.entries[i], f.entries[j] = f.entries[j], f.entries[i] }

func (f *frontier) Push(x any) {
	f.entries = append(f.entries, x.(entry))
}

func (f *frontier) Pop() any {
	old := f.entries
	n := len(old)
	e := old[n-1]
	f.entries = old[:n-1]

	return e
}
