package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/algoviz/playback"
)

// PlayerModel is the Bubble Tea model around one playback.Controller. S is
// the trace's step type; render turns the current step into a frame.
//
// The model holds a pointer to the controller, so Bubble Tea's by-value
// copies all drive the same playback state.
type PlayerModel[S any] struct {
	ctrl   *playback.Controller[S]
	render func(S) string
	title  string

	done   bool
	width  int
	height int
}

// NewPlayer builds a player around ctrl. The controller should already
// carry the Bridge hooks; see RunPlayer.
func NewPlayer[S any](ctrl *playback.Controller[S], render func(S) string, title string) PlayerModel[S] {
	return PlayerModel[S]{ctrl: ctrl, render: render, title: title}
}

// Init implements tea.Model. Playback starts paused; the user presses space.
func (m PlayerModel[S]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlayerModel[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StepMsg:
		// Position already advanced inside the controller; redraw only.
		return m, nil

	case CompleteMsg:
		m.done = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey maps keyboard input onto controller operations.
func (m PlayerModel[S]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.ctrl.Pause()
		return m, tea.Quit

	case " ":
		if m.ctrl.State() == playback.Playing {
			m.ctrl.Pause()
		} else {
			m.done = false
			m.ctrl.Play()
		}

	case "right", "l":
		m.ctrl.StepForward()

	case "left", "h":
		m.ctrl.StepBackward()

	case "r":
		m.done = false
		m.ctrl.Reset()

	case "1":
		_ = m.ctrl.SetSpeed(playback.Turtle)
	case "2":
		_ = m.ctrl.SetSpeed(playback.Normal)
	case "3":
		_ = m.ctrl.SetSpeed(playback.Lightning)
	case "m":
		_ = m.ctrl.SetSpeed(playback.Manual)
	}

	return m, nil
}

// View implements tea.Model.
func (m PlayerModel[S]) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if step, ok := m.ctrl.Current(); ok {
		b.WriteString(m.render(step))
	} else {
		b.WriteString(statusStyle.Render("empty trace"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(
		"space play/pause  ←/→ step  r reset  1/2/3 speed  m manual  q quit"))

	return b.String()
}

// statusLine summarizes position, state, and speed.
func (m PlayerModel[S]) statusLine() string {
	line := fmt.Sprintf("step %d/%d  %s  %s",
		m.ctrl.CurrentIndex()+1, m.ctrl.Len(), m.ctrl.State(), m.ctrl.Speed())
	out := statusStyle.Render(line)
	if m.done {
		out += " " + completeStyle.Render("COMPLETE")
	}

	return out
}

// RunPlayer wires a trace, a renderer, and a fresh controller into a
// Bubble Tea program and blocks until the user quits.
func RunPlayer[S any](trace []S, render func(S) string, title string, opts ...playback.Option[S]) error {
	bridge := NewBridge()
	opts = append(opts,
		playback.WithOnStep[S](func(i int, _ S) { bridge.Step(i) }),
		playback.WithOnComplete[S](bridge.Complete),
	)
	ctrl := playback.NewController(trace, opts...)

	p := tea.NewProgram(NewPlayer(ctrl, render, title))
	bridge.Bind(p.Send)

	_, err := p.Run()
	ctrl.Pause()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
