package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// StepMsg reports that the controller moved to a new trace index.
type StepMsg struct {
	Index int
}

// CompleteMsg reports that automatic playback reached the final step.
type CompleteMsg struct{}

// Bridge forwards controller hook calls into the Bubble Tea message loop.
// The controller's ticker goroutine fires hooks before the tea.Program
// exists, so the bridge buffers messages until Bind supplies the program's
// Send function.
type Bridge struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []tea.Msg
}

// NewBridge returns an unbound bridge. Call Bind with program.Send before
// starting playback, or early messages queue up and flush on Bind.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Bind installs the destination and flushes anything buffered before it.
func (b *Bridge) Bind(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	queued := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, msg := range queued {
		send(msg)
	}
}

// Step injects a StepMsg for the given index.
func (b *Bridge) Step(index int) {
	b.post(StepMsg{Index: index})
}

// Complete injects a CompleteMsg.
func (b *Bridge) Complete() {
	b.post(CompleteMsg{})
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	if send == nil {
		b.pending = append(b.pending, msg)
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	send(msg)
}
