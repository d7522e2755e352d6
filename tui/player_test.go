package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
)

func testPlayer(t *testing.T) PlayerModel[sorting.Step] {
	t.Helper()

	trace, err := sorting.Generate([]int{5, 3, 8, 1}, sorting.Bubble)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Manual speed keeps the timer off; tests drive every move by key.
	ctrl := playback.NewController(trace, playback.WithSpeed[sorting.Step](playback.Manual))

	return NewPlayer(ctrl, RenderSortStep, "bubble sort")
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPlayer_ArrowKeysScrub(t *testing.T) {
	m := testPlayer(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(PlayerModel[sorting.Step])
	if got := m.ctrl.CurrentIndex(); got != 1 {
		t.Fatalf("index after right = %d, want 1", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(PlayerModel[sorting.Step])
	if got := m.ctrl.CurrentIndex(); got != 0 {
		t.Fatalf("index after left = %d, want 0", got)
	}
}

func TestPlayer_SpaceIsNoOpInManual(t *testing.T) {
	m := testPlayer(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(PlayerModel[sorting.Step])
	if got := m.ctrl.State(); got != playback.Idle {
		t.Fatalf("state after space in manual mode = %v, want Idle", got)
	}
}

func TestPlayer_ResetRewinds(t *testing.T) {
	m := testPlayer(t)

	for i := 0; i < 3; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(PlayerModel[sorting.Step])
	}
	next, _ := m.Update(keyRune('r'))
	m = next.(PlayerModel[sorting.Step])

	if got := m.ctrl.CurrentIndex(); got != 0 {
		t.Fatalf("index after reset = %d, want 0", got)
	}
}

func TestPlayer_SpeedKeys(t *testing.T) {
	m := testPlayer(t)

	cases := []struct {
		key  rune
		want playback.Speed
	}{
		{'1', playback.Turtle},
		{'2', playback.Normal},
		{'3', playback.Lightning},
		{'m', playback.Manual},
	}
	for _, tc := range cases {
		next, _ := m.Update(keyRune(tc.key))
		m = next.(PlayerModel[sorting.Step])
		if got := m.ctrl.Speed(); got != tc.want {
			t.Fatalf("speed after %q = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestPlayer_QuitPausesController(t *testing.T) {
	m := testPlayer(t)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("quit command produced no message")
	}
}

func TestPlayer_CompleteMsgShowsBadge(t *testing.T) {
	m := testPlayer(t)

	next, _ := m.Update(CompleteMsg{})
	m = next.(PlayerModel[sorting.Step])
	if !strings.Contains(m.View(), "COMPLETE") {
		t.Error("view does not show the completion badge after CompleteMsg")
	}
}

func TestPlayer_ViewShowsTitleAndStatus(t *testing.T) {
	m := testPlayer(t)
	view := m.View()

	for _, want := range []string{"bubble sort", "step 1/", "manual"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBridge_BuffersUntilBound(t *testing.T) {
	b := NewBridge()
	b.Step(3)
	b.Complete()

	var got []tea.Msg
	b.Bind(func(msg tea.Msg) { got = append(got, msg) })

	if len(got) != 2 {
		t.Fatalf("flushed %d messages, want 2", len(got))
	}
	if step, ok := got[0].(StepMsg); !ok || step.Index != 3 {
		t.Errorf("first flushed message = %#v, want StepMsg{Index: 3}", got[0])
	}
	if _, ok := got[1].(CompleteMsg); !ok {
		t.Errorf("second flushed message = %#v, want CompleteMsg", got[1])
	}

	// Bound: messages pass straight through.
	b.Step(7)
	if len(got) != 3 {
		t.Fatalf("post-bind message not delivered, have %d", len(got))
	}
}
