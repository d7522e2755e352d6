// Package tui renders a trace player in the terminal.
//
// What:
//
//   - PlayerModel is a Bubble Tea model around a playback.Controller. The
//     controller owns the clock; the model only reacts to StepMsg and
//     CompleteMsg injected through a Bridge and redraws the current frame.
//   - Render functions turn one trace step into a styled frame: RenderSortStep
//     for array traces, RenderPathStep for grid traces, RenderTreeStep for
//     tree traces.
//   - RunPlayer wires the three together and blocks until the user quits.
//
// Keys:
//
//	space      play / pause
//	← →        step backward / forward
//	r          reset to the first step
//	1 2 3      turtle / normal / lightning speed
//	m          manual mode (timer off, arrow keys only)
//	q, ctrl+c  quit
//
// The model never mutates the controller's trace; all playback state changes
// go through the controller so the keyboard and the timer can never disagree
// about the position.
package tui
