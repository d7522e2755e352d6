package challenge_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/challenge"
)

// Score a run that matched the optimal visit count exactly.
func ExampleEvaluate() {
	ch, err := challenge.ByID("first-steps")
	if err != nil {
		fmt.Println("lookup:", err)
		return
	}

	res := challenge.Evaluate(ch, challenge.Metrics{
		NodesVisited: 14,
		PathLength:   6,
		Algorithm:    "astar",
	})
	fmt.Println(res.Passed, res.Stars)
	// Output: true 3
}
