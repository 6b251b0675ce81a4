package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game, *bytes.Buffer) {
	t.Helper()

	g, err := snake.New(snake.DefaultSettings())
	if err != nil {
		t.Fatalf("snake.New: %v", err)
	}

	var buf bytes.Buffer
	logger := log.New(&buf)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 26, TickRate: 60, Seed: 1}
	return NewModel(g, cfg, logger), g, &buf
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelStartsOnAnyKey(t *testing.T) {
	m, _, buf := newTestModel(t)

	if m.state.Started {
		t.Fatal("game started before any key")
	}

	m, _ = update(t, m, runeKey('x'))
	if !m.state.Started || m.state.GameOver {
		t.Fatalf("state after key = %+v, want started and playing", m.state)
	}
	if m.session == "" {
		t.Error("session id not assigned on start")
	}
	if !strings.Contains(buf.String(), "new game") {
		t.Errorf("log missing new game:\n%s", buf.String())
	}
}

func TestModelTickMovesSnake(t *testing.T) {
	m, g, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('x'))

	t0 := time.Unix(1000, 0)
	m, cmd := update(t, m, TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if g.Moves() != 0 {
		t.Fatalf("moves after first tick = %d, want 0", g.Moves())
	}

	m, _ = update(t, m, TickMsg(t0.Add(200*time.Millisecond)))
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}

	// A long stall still yields a single move.
	_, _ = update(t, m, TickMsg(t0.Add(10*time.Second)))
	if g.Moves() != 2 {
		t.Errorf("moves after stall = %d, want 2", g.Moves())
	}
}

func TestModelGameOverAndRestart(t *testing.T) {
	m, g, buf := newTestModel(t)
	m, _ = update(t, m, runeKey('x'))

	// Heading right from (10,10) the snake reaches the east wall well
	// within 40 moves, then the cooldown runs out.
	now := time.Unix(1000, 0)
	for range 40 {
		m, _ = update(t, m, TickMsg(now))
		now = now.Add(200 * time.Millisecond)
	}
	if !m.state.GameOver {
		t.Fatalf("state = %+v, want game over", m.state)
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("log missing game over:\n%s", buf.String())
	}
	first := m.session

	m, _ = update(t, m, runeKey('x'))
	if m.state.GameOver {
		t.Fatal("any key after cooldown did not restart")
	}
	if m.session == first {
		t.Error("restart kept the previous session id")
	}
	if g.Moves() != 0 {
		t.Errorf("moves after restart = %d, want 0", g.Moves())
	}
	if n := strings.Count(buf.String(), "new game"); n != 2 {
		t.Errorf("logged %d new games, want 2", n)
	}
}

func TestModelMouseTurns(t *testing.T) {
	m, g, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('x'))

	_, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := g.Simulator().Actor().QueuedDirection(); got != snake.DirDown {
		t.Errorf("queued direction after click = %v, want %v", got, snake.DirDown)
	}
}

func TestModelDirectionKey(t *testing.T) {
	m, g, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('x'))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := g.Simulator().Actor().QueuedDirection(); got != snake.DirUp {
		t.Errorf("queued direction = %v, want %v", got, snake.DirUp)
	}

	// Reversal of the current direction is ignored.
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := g.Simulator().Actor().QueuedDirection(); got != snake.DirUp {
		t.Errorf("queued direction after reversal = %v, want %v", got, snake.DirUp)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command produced %T, want tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 24})
	if m.screen.Width() != 30 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, want 30x23", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, runeKey('x'))

	view := m.View()
	for _, want := range []string{"Score: 0", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
