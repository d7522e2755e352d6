package playback

import (
	"sync"
	"time"
)

// Controller scrubs through a precomputed trace of steps. Construct with
// NewController; the zero value is not usable.
type Controller[S any] struct {
	mu    sync.Mutex
	trace []S
	index int
	state State
	speed Speed

	delays DelayTable
	// stop is the cancel handle of the currently running ticker goroutine;
	// nil when no timer runs. Each Play allocates a fresh channel, and a
	// stale goroutine recognizes itself by comparing against this field.
	stop chan struct{}
	// completed latches the completion signal for the loaded trace.
	completed bool

	onStep     func(int, S)
	onComplete func()
}

// NewController wraps trace, which the controller treats as read-only.
// Initial position: Idle at index 0, Normal speed, default delay table.
func NewController[S any](trace []S, opts ...Option[S]) *Controller[S] {
	c := &Controller[S]{
		trace:  trace,
		speed:  Normal,
		delays: DefaultDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetTrace installs a fresh trace: any running timer is cancelled, the
// index rewinds to 0, and the completion latch re-arms.
func (c *Controller[S]) SetTrace(trace []S) {
	c.mu.Lock()
	c.cancelLocked()
	c.trace = trace
	c.index = 0
	c.state = Idle
	c.completed = false
	c.mu.Unlock()
}

// Play starts or resumes automatic advancement. At the final index it
// rewinds to 0 and re-arms completion first, so a finished trace replays.
// No-op while already playing, in Manual speed, or with an empty trace
// (which is already complete by definition).
func (c *Controller[S]) Play() {
	c.mu.Lock()
	if len(c.trace) == 0 || c.speed == Manual || c.state == Playing {
		c.mu.Unlock()
		return
	}
	if c.index == len(c.trace)-1 {
		c.index = 0
		c.completed = false
	}
	c.startLocked()
	c.mu.Unlock()
}

// Pause cancels the timer; the index is unchanged.
func (c *Controller[S]) Pause() {
	c.mu.Lock()
	c.cancelLocked()
	if c.state == Playing {
		c.state = Paused
	}
	c.mu.Unlock()
}

// Reset cancels any timer, rewinds to index 0, and re-arms completion.
func (c *Controller[S]) Reset() {
	c.mu.Lock()
	c.cancelLocked()
	c.index = 0
	c.state = Idle
	c.completed = false
	c.mu.Unlock()
}

// StepForward moves one step ahead, clamped at the end. Available in any
// state; it never fires the completion signal. Reaching the last index by
// hand is inspection, not a finished run.
func (c *Controller[S]) StepForward() {
	c.shift(+1)
}

// StepBackward moves one step back, clamped at 0.
func (c *Controller[S]) StepBackward() {
	c.shift(-1)
}

// shift applies a manual ±1 move and fires the step hook on change.
func (c *Controller[S]) shift(delta int) {
	c.mu.Lock()
	next := c.index + delta
	if next < 0 || next >= len(c.trace) {
		c.mu.Unlock()
		return
	}
	c.index = next
	step := c.trace[next]
	hook := c.onStep
	c.mu.Unlock()

	if hook != nil {
		hook(next, step)
	}
}

// SetSpeed selects a delay level. Switching into Manual cancels any
// pending advance and freezes at the current index; switching out of
// Manual resumes automatic play from the current index at the new delay.
// Changing the level mid-play restarts the ticker with the new delay.
func (c *Controller[S]) SetSpeed(level Speed) error {
	c.mu.Lock()
	if level != Manual {
		if _, ok := c.delays[level]; !ok {
			c.mu.Unlock()
			return ErrUnknownSpeed
		}
	}

	wasManual := c.speed == Manual
	c.speed = level

	switch {
	case level == Manual:
		c.cancelLocked()
		if c.state == Playing {
			c.state = Paused
		}
	case wasManual:
		if len(c.trace) > 0 && c.index < len(c.trace)-1 {
			c.startLocked()
		}
	case c.state == Playing:
		// New delay takes effect by restarting the ticker.
		c.cancelLocked()
		c.startLocked()
	}
	c.mu.Unlock()

	return nil
}

// CurrentIndex returns the playback position.
func (c *Controller[S]) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index
}

// Current returns the step at the playback position; ok is false for an
// empty trace.
func (c *Controller[S]) Current() (step S, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.trace) == 0 {
		return step, false
	}

	return c.trace[c.index], true
}

// State returns the automatic-advance state.
func (c *Controller[S]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Speed returns the active speed level.
func (c *Controller[S]) Speed() Speed {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// Len returns the trace length.
func (c *Controller[S]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.trace)
}

// Done reports whether playback sits at the end of the trace. An empty
// trace is already complete.
func (c *Controller[S]) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.trace) == 0 || c.index == len(c.trace)-1
}

// startLocked launches the ticker goroutine. Caller holds the lock.
func (c *Controller[S]) startLocked() {
	stop := make(chan struct{})
	c.stop = stop
	c.state = Playing
	go c.loop(c.delays[c.speed], stop)
}

// cancelLocked stops the running ticker, if any. Caller holds the lock.
func (c *Controller[S]) cancelLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// loop ticks until cancelled or the trace ends.
func (c *Controller[S]) loop(delay time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !c.advance(stop) {
				return
			}
		}
	}
}

// advance moves one index forward on behalf of the ticker identified by
// stop. Returns false when the goroutine should exit. Hooks run outside
// the lock.
func (c *Controller[S]) advance(stop chan struct{}) bool {
	c.mu.Lock()
	if c.stop != stop || c.state != Playing {
		// A cancel raced this tick; the goroutine is stale.
		c.mu.Unlock()
		return false
	}
	if c.index >= len(c.trace)-1 {
		// Single-step trace: already at the end, nothing to advance.
		c.state = Paused
		c.stop = nil
		var completeHook func()
		if !c.completed {
			c.completed = true
			completeHook = c.onComplete
		}
		c.mu.Unlock()
		if completeHook != nil {
			completeHook()
		}
		return false
	}

	c.index++
	idx := c.index
	step := c.trace[idx]
	stepHook := c.onStep

	var completeHook func()
	if idx == len(c.trace)-1 {
		// Final index reached under automatic advance: stop in place and
		// signal completion once.
		c.state = Paused
		c.stop = nil
		if !c.completed {
			c.completed = true
			completeHook = c.onComplete
		}
	}
	c.mu.Unlock()

	if stepHook != nil {
		stepHook(idx, step)
	}
	if completeHook != nil {
		completeHook()
	}

	return completeHook == nil && idx < len(c.trace)-1
}
