package tui

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/pathfind"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/tree"
)

// Cell glyphs, two runes wide so the board keeps a roughly square aspect.
const (
	glyphStart    = "S "
	glyphGoal     = "G "
	glyphObstacle = "██"
	glyphPath     = "◆ "
	glyphFrontier = "○ "
	glyphVisited  = "● "
	glyphEmpty    = "· "
)

// RenderSortStep draws one array-trace frame: the working array with the
// active indices highlighted, the operation line, and the counters.
func RenderSortStep(s sorting.Step) string {
	var b strings.Builder
	for i, v := range s.Array {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := fmt.Sprintf("%3d", v)
		switch {
		case containsIndex(s.Swapping, i):
			b.WriteString(swappingStyle.Render(cell))
		case containsIndex(s.Comparing, i):
			b.WriteString(comparingStyle.Render(cell))
		case i == s.Pivot:
			b.WriteString(pivotStyle.Render(cell))
		case containsIndex(s.Sorted, i):
			b.WriteString(sortedStyle.Render(cell))
		default:
			b.WriteString(plainStyle.Render(cell))
		}
	}
	b.WriteByte('\n')
	b.WriteString(operationStyle.Render(s.Operation))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(
		fmt.Sprintf("comparisons: %d  swaps: %d", s.Comparisons, s.Swaps)))

	return b.String()
}

// RenderPathStep draws one grid-trace frame: the board with per-cell state
// glyphs, the operation line, and the counters.
func RenderPathStep(s pathfind.Step) string {
	var b strings.Builder
	for r := range s.Grid {
		for c := range s.Grid[r] {
			cell := s.Grid[r][c]
			switch {
			case cell.IsStart:
				b.WriteString(startStyle.Render(glyphStart))
			case cell.IsEnd:
				b.WriteString(goalStyle.Render(glyphGoal))
			case cell.IsObstacle:
				b.WriteString(obstacleStyle.Render(glyphObstacle))
			case cell.IsPath:
				b.WriteString(pathStyle.Render(glyphPath))
			case cell.IsFrontier:
				b.WriteString(frontierStyle.Render(glyphFrontier))
			case cell.IsVisited:
				b.WriteString(visitedStyle.Render(glyphVisited))
			default:
				b.WriteString(emptyStyle.Render(glyphEmpty))
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(operationStyle.Render(s.Operation))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(
		fmt.Sprintf("visited: %d  path: %d", s.NodesVisited, s.PathLength)))

	return b.String()
}

// RenderTreeStep draws one tree-trace frame: the node values in storage
// order with the active node highlighted, and the traversal output so far.
func RenderTreeStep(s tree.Step) string {
	var b strings.Builder
	for i, n := range s.Nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		cell := fmt.Sprintf("%d", n.Value)
		switch {
		case i == s.Visiting:
			b.WriteString(visitingStyle.Render(cell))
		case containsIndex(s.Comparing, i):
			b.WriteString(comparingStyle.Render(cell))
		default:
			b.WriteString(plainStyle.Render(cell))
		}
	}
	if len(s.Heap) > 0 {
		b.WriteByte('\n')
		b.WriteString(statusStyle.Render(fmt.Sprintf("heap: %v", s.Heap)))
	}
	if len(s.Output) > 0 {
		b.WriteByte('\n')
		b.WriteString(outputStyle.Render(fmt.Sprintf("output: %v", s.Output)))
	}
	b.WriteByte('\n')
	b.WriteString(operationStyle.Render(s.Operation))

	return b.String()
}

func containsIndex(xs []int, i int) bool {
	for _, x := range xs {
		if x == i {
			return true
		}
	}

	return false
}
