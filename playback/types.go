// Package playback defines the speed levels, delay table, options, and
// sentinel errors of the trace controller.
package playback

import (
	"errors"
	"time"
)

// ErrUnknownSpeed is returned by SetSpeed for a level with no configured
// delay.
var ErrUnknownSpeed = errors.New("playback: unknown speed level")

// State is the controller's automatic-advance state.
type State int

const (
	// Idle: a trace is loaded, nothing has run yet.
	Idle State = iota
	// Playing: the ticker is advancing the index.
	Playing
	// Paused: advancing stopped, position retained.
	Paused
)

// String returns the state name for logs and UIs.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Speed selects a fixed frame delay, or Manual to disable automatic
// advancement entirely.
type Speed string

// The enumerated speed levels.
const (
	Turtle    Speed = "turtle"
	Normal    Speed = "normal"
	Lightning Speed = "lightning"
	Manual    Speed = "manual"
)

// DelayTable maps each automatic speed level to its frame delay. The table
// is plain configuration passed in by the embedding application; Manual
// needs no entry.
type DelayTable map[Speed]time.Duration

// DefaultDelays returns the stock speed table.
func DefaultDelays() DelayTable {
	return DelayTable{
		Turtle:    800 * time.Millisecond,
		Normal:    300 * time.Millisecond,
		Lightning: 80 * time.Millisecond,
	}
}

// Option configures a Controller via functional arguments.
type Option[S any] func(*Controller[S])

// WithDelays replaces the default delay table.
func WithDelays[S any](d DelayTable) Option[S] {
	return func(c *Controller[S]) {
		if d != nil {
			c.delays = d
		}
	}
}

// WithSpeed sets the initial speed level.
func WithSpeed[S any](s Speed) Option[S] {
	return func(c *Controller[S]) {
		c.speed = s
	}
}

// WithOnStep registers a hook fired after every index change, automatic or
// manual, with the new index and the step at it.
func WithOnStep[S any](fn func(index int, step S)) Option[S] {
	return func(c *Controller[S]) {
		if fn != nil {
			c.onStep = fn
		}
	}
}

// WithOnComplete registers the completion hook, the seam the embedding
// application uses to award XP and record mastery. Fired exactly once per
// loaded trace, when automatic advance reaches the final index.
func WithOnComplete[S any](fn func()) Option[S] {
	return func(c *Controller[S]) {
		if fn != nil {
			c.onComplete = fn
		}
	}
}
