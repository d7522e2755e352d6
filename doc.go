// Package algoviz turns classic algorithms into step-by-step traces you
// can replay, scrub, and score: sorting, grid pathfinding, and binary
// trees, with a terminal player on top.
//
// 🚀 What is algoviz?
//
//	A library plus CLI that brings together:
//		• Sorting traces: bubble, selection, insertion, merge, quick
//		• Pathfinding traces: BFS, Dijkstra, A* over obstacle grids
//		• Tree traces: BST insertion, max-heap build, four traversals
//		• Maze generation: seeded random boards and fixed slalom walls
//		• Playback: play/pause/step/speed control over any trace
//		• Challenges: constraint checking and a 0-3 star rating
//
// ✨ Why choose algoviz?
//
//   - Deterministic – the same input always produces the same trace
//   - Inspectable – every comparison, swap, and visit is its own step
//   - Replayable – traces are plain slices; step backward for free
//   - Composable – generators are pure, the player is generic
//
// Everything is organized under flat subpackages:
//
//	sorting/   — instrumented sorting algorithms, one step per operation
//	grid/      — the obstacle board model shared by pathfinding and mazes
//	pathfind/  — BFS, Dijkstra and A* unified over one priority frontier
//	tree/      — flat binary trees: BST build, heapify, traversals
//	maze/      — seeded board generators with solvability guarantees
//	playback/  — the generic trace controller (play, pause, step, speed)
//	challenge/ — curated boards, constraints, and the star evaluator
//	tui/       — the Bubble Tea trace player
//
// See examples/ for runnable scenarios, or start with:
//
//	algoviz play sort -v 5,3,8,1
package algoviz
