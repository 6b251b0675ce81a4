package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g, err := New(DefaultSettings())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 444})
	return g
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.Length = 0
	if _, err := New(s); err == nil {
		t.Error("expected an error for an empty snake")
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := newTestGame(t, 80, 24)
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameWaitsForFirstKey(t *testing.T) {
	g := newTestGame(t, 80, 24)

	for range 120 {
		g.Step(1.0 / 60)
	}
	if g.Simulator().Moves() != 0 {
		t.Fatal("the snake must not move before the first key press")
	}
	if g.State().Started {
		t.Fatal("game should not be started yet")
	}

	// The first key only starts the game; it does not steer.
	if !g.Apply(core.ActionUp) {
		t.Fatal("first key should start the game")
	}
	if g.Simulator().Actor().QueuedDirection() != DirRight {
		t.Error("starting key should not turn the snake")
	}

	g.Step(0.2)
	if g.Simulator().Moves() != 1 {
		t.Errorf("moves = %d after start, expected 1", g.Simulator().Moves())
	}
}

func TestGameApplySteering(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Apply(core.ActionRestart) // start

	tests := []struct {
		action core.Action
		want   Direction
		ok     bool
	}{
		{core.ActionLeft, DirRight, false}, // reversal
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionRight, DirRight, true},
		{core.ActionTurn, DirDown, true},
		{core.ActionNone, DirDown, false},
		{core.ActionQuit, DirDown, false},
	}

	for _, tc := range tests {
		if got := g.Apply(tc.action); got != tc.ok {
			t.Errorf("Apply(%s) = %v, expected %v", tc.action, got, tc.ok)
		}
		if q := g.Simulator().Actor().QueuedDirection(); q != tc.want {
			t.Errorf("after %s queued = %s, expected %s", tc.action, q, tc.want)
		}
	}
}

func TestGameAnyKeyRestartsAfterCooldown(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Apply(core.ActionRight)

	// Steer straight into the east wall
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(0.2)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	if g.Apply(core.ActionUp) {
		t.Error("restart accepted before the cooldown")
	}
	g.Step(1)
	if !g.Apply(core.ActionUp) {
		t.Fatal("any key should restart after the cooldown")
	}
	if st := g.State(); st.GameOver || st.Score != 0 {
		t.Errorf("state after restart = %+v", st)
	}
}

func TestGameRenderAttractScreen(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	for _, want := range []string{"Snake", "Score: 0", "FPS: 0", "S N A K E", "Press any key to start!"} {
		if !strings.Contains(content, want) {
			t.Errorf("render should contain %q", want)
		}
	}
}

func TestGameRenderBoard(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Apply(core.ActionRight)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Board top-left corner is a wall
	if got := screen.Get(g.mapOffsetX, g.mapOffsetY); got != '#' {
		t.Errorf("corner glyph = %q, expected '#'", got)
	}

	segs := g.Simulator().Actor().Segments()
	if got := screen.Get(g.mapOffsetX+segs[0].X, g.mapOffsetY+segs[0].Y); got != '>' {
		t.Errorf("head glyph = %q, expected '>'", got)
	}
	for _, seg := range segs[1:] {
		cell := screen.GetCell(g.mapOffsetX+seg.X, g.mapOffsetY+seg.Y)
		if cell.Rune != 'o' || cell.Color != core.ColorGreen {
			t.Errorf("body cell at %v = %+v, expected green 'o'", seg, cell)
		}
	}

	item := g.Simulator().Grid().Items()[0]
	cell := screen.GetCell(g.mapOffsetX+item.X, g.mapOffsetY+item.Y)
	if cell.Rune != '*' || cell.Color != core.ColorBrightRed {
		t.Errorf("item cell = %+v, expected red '*'", cell)
	}
}

func TestGameRenderShowsFPSAndScore(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Apply(core.ActionRight)
	g.SetFPS(59)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "FPS: 59") {
		t.Errorf("HUD = %q, expected FPS", screen.Row(0))
	}
	if strings.Contains(screen.String(), "Press any key") {
		t.Error("overlay should be gone once playing")
	}
}

func TestGameWindowTooSmall(t *testing.T) {
	g := newTestGame(t, 20, 10)
	g.Apply(core.ActionRight)
	g.Step(1)

	if g.Simulator().Moves() != 0 {
		t.Error("simulation should pause while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}

	// Growing the window resumes without resetting the game
	g.Resize(80, 24)
	g.Step(1)
	if g.Simulator().Moves() != 1 {
		t.Errorf("moves = %d after resize, expected 1", g.Simulator().Moves())
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("SettingsFromConfig() failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("settings = %+v, expected %+v", s, DefaultSettings())
	}

	cfg := config.DefaultSnakeConfig()
	cfg.Snake.Direction = "sideways"
	if _, err := SettingsFromConfig(cfg); err == nil {
		t.Error("expected an error for an unknown direction")
	}

	cfg = config.DefaultSnakeConfig()
	cfg.Grid.Cols = 8 // Start column 10 is off the board
	if _, err := SettingsFromConfig(cfg); err == nil {
		t.Error("expected an error for a snake outside the board")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"Right", DirRight},
		{" DOWN ", DirDown},
		{"left", DirLeft},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseDirection(%q) = %s, %v; expected %s", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected an error for north")
	}
}

func TestDirectionOpposites(t *testing.T) {
	pairs := [][2]Direction{{DirUp, DirDown}, {DirRight, DirLeft}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%s and %s should be opposites", p[0], p[1])
		}
		if sum := p[0].Vector().Add(p[1].Vector()); sum != (Position{}) {
			t.Errorf("vectors of %s and %s should cancel, got %v", p[0], p[1], sum)
		}
	}
	if DirLeft.Clockwise() != DirUp {
		t.Error("clockwise from left should wrap to up")
	}
}
