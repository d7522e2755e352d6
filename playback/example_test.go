package playback_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
)

// Manual mode turns the controller into a pure scrubber: no timer, every
// move is an explicit step.
func ExampleController_StepForward() {
	trace, err := sorting.Generate([]int{2, 1}, sorting.Bubble)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	ctrl := playback.NewController(trace,
		playback.WithSpeed[sorting.Step](playback.Manual))

	ctrl.StepForward()
	if step, ok := ctrl.Current(); ok {
		fmt.Println(step.Operation)
	}
	// Output: compare a[0]=2 with a[1]=1
}
