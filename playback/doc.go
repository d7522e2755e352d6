// Package playback drives an index through a precomputed trace, forward,
// backward, and at variable speed.
//
// What:
//
//   - Controller[S] owns a position into an immutable []S trace and the
//     single timer that advances it. States: Idle → Playing ⇄ Paused, plus
//     an orthogonal Manual speed that disables automatic advancement
//     entirely.
//   - Play resumes a recurring ticker that advances the index by exactly 1
//     per tick; Play at the final index rewinds to 0 first. Pause cancels
//     the ticker in place. StepForward/StepBackward work in any state and
//     clamp at both ends. Reset cancels the ticker and rewinds.
//   - The displayed state is always trace[index]: the controller never
//     synthesizes intermediate states, so backward stepping reproduces the
//     exact prior step with no recomputation and no drift.
//
// Completion:
//
//   - When automatic advance reaches the last index the controller pauses
//     itself and fires the OnComplete hook exactly once per loaded trace.
//     Re-entering the last index by manual stepping does not re-fire;
//     Reset, SetTrace, and replay-from-the-end re-arm the latch.
//
// Concurrency:
//
//   - The ticker goroutine is the only asynchronous actor. All state lives
//     behind one mutex; hooks are invoked outside the lock so they may call
//     back into the controller. The running timer is owned state with an
//     explicit start/cancel lifecycle: a new run or a mode switch can
//     never leak a stale timer, because each start allocates a fresh stop
//     channel and stale ticks identify themselves against it.
//
// Edge cases:
//
//   - An empty trace is treated as already complete: Play is a no-op and
//     Done reports true.
//
// Errors:
//
//   - ErrUnknownSpeed: SetSpeed received a level absent from the delay
//     table.
package playback
