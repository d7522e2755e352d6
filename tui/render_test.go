package tui

import (
	"strings"
	"testing"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathfind"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/tree"
)

func TestRenderSortStep(t *testing.T) {
	trace, err := sorting.Generate([]int{5, 3, 8, 1}, sorting.Bubble)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	first := RenderSortStep(trace[0])
	for _, want := range []string{"5", "3", "8", "1", "initial array", "comparisons: 0"} {
		if !strings.Contains(first, want) {
			t.Errorf("first frame missing %q:\n%s", want, first)
		}
	}

	last := RenderSortStep(trace[len(trace)-1])
	if !strings.Contains(last, "array sorted") {
		t.Errorf("final frame missing completion operation:\n%s", last)
	}
}

func TestRenderPathStep(t *testing.T) {
	g, err := grid.New(3, 3,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 2, Col: 2}),
		grid.WithObstacles([]grid.Coord{{Row: 1, Col: 1}}),
	)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	trace, err := pathfind.Generate(g, pathfind.BFS)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	first := RenderPathStep(trace[0])
	for _, want := range []string{glyphStart, glyphGoal, glyphObstacle, "initial grid"} {
		if !strings.Contains(first, want) {
			t.Errorf("first frame missing %q:\n%s", want, first)
		}
	}

	last := RenderPathStep(trace[len(trace)-1])
	for _, want := range []string{glyphPath, "path found", "path: 4"} {
		if !strings.Contains(last, want) {
			t.Errorf("final frame missing %q:\n%s", want, last)
		}
	}
}

func TestRenderTreeStep(t *testing.T) {
	_, tr, err := tree.BuildBST([]int{8, 3, 10})
	if err != nil {
		t.Fatalf("BuildBST: %v", err)
	}
	trace, err := tree.Traverse(tr, tree.InOrder)
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}

	last := RenderTreeStep(trace[len(trace)-1])
	if !strings.Contains(last, "output: [3 8 10]") {
		t.Errorf("final frame missing traversal output:\n%s", last)
	}
}
