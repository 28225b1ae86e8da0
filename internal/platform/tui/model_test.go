package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	frames  []core.InputFrame
	resets  int
	resized [2]int
	score   int
	paused  bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score = 0
	g.paused = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, Paused: g.paused}
}

func (g *stubGame) Resize(width, height int) {
	g.resized = [2]int{width, height}
}

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func newTestModel(t *testing.T, opts Options) (Model, *stubGame) {
	t.Helper()
	game := &stubGame{}
	m := NewModel(game, core.DefaultConfig(), opts)
	m.Init()
	return m, game
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{ID: m.tickID})
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelInitResetsGame(t *testing.T) {
	_, game := newTestModel(t, Options{})
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, cmd := send(t, m, TickMsg{ID: m.tickID + 1000})
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if len(game.frames) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(game.frames))
	}

	m = tick(t, m)
	if len(game.frames) != 1 {
		t.Errorf("steps = %d, expected 1", len(game.frames))
	}
	if m.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.Ticks())
	}
}

func TestModelHoldsMovementKeys(t *testing.T) {
	m, game := newTestModel(t, Options{HoldTicks: 3})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 5 {
		m = tick(t, m)
	}

	for i, frame := range game.frames {
		expected := i < 3
		if frame.Has(core.ActionLeft) != expected {
			t.Errorf("tick %d: left held = %v, expected %v", i, frame.Has(core.ActionLeft), expected)
		}
	}
}

func TestModelEdgeActionsLastOneTick(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, runes("p"))
	m = tick(t, m)
	m = tick(t, m)

	if !game.frames[0].Has(core.ActionPause) {
		t.Error("pause missing from first tick")
	}
	if game.frames[1].Has(core.ActionPause) {
		t.Error("pause repeated on second tick")
	}
	if m.Ticks() != 0 {
		t.Errorf("paused ticks counted: %d", m.Ticks())
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, Options{Store: store})

	for range 10 {
		m = tick(t, m)
	}
	game.score = 7

	m, cmd := send(t, m, runes("q"))
	if !m.Quitting() || cmd == nil {
		t.Fatal("q did not quit")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 7 || scores[0].Ticks != 10 {
		t.Errorf("scores = %+v, expected one session of 7 points over 10 ticks", scores)
	}
}

func TestModelSkipsEmptySessions(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, Options{Store: store})

	m = tick(t, m)
	send(t, m, runes("q"))

	best, err := store.HighScore("stub")
	if err != nil {
		t.Fatal(err)
	}
	if best != 0 {
		t.Errorf("HighScore() = %d, expected nothing saved", best)
	}
}

func TestModelRestartSavesAndResets(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, Options{Store: store})

	m = tick(t, m)
	m = tick(t, m)
	game.score = 3

	m, _ = send(t, m, runes("r"))
	m = tick(t, m)

	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.Ticks() != 0 {
		t.Errorf("Ticks() = %d after restart, expected 0", m.Ticks())
	}
	if best, _ := store.HighScore("stub"); best != 3 {
		t.Errorf("HighScore() = %d, expected 3", best)
	}
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(t, m, runes("b"))
	if m.BackToMenu() || cmd != nil {
		t.Error("standalone model reacted to back")
	}

	m.embedded = true
	m, _ = send(t, m, runes("b"))
	if !m.BackToMenu() {
		t.Error("embedded model ignored back")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelConfigChangeResets(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m = tick(t, m)

	m, cmd := send(t, m, ConfigChangedMsg{Path: "jumper.yaml"})
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", m.Ticks())
	}
	if cmd != nil {
		t.Error("no watcher, but a watch command was scheduled")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if m.View() == "" {
		t.Error("empty view")
	}

	m, _ = send(t, m, runes("q"))
	if m.View() != "" {
		t.Error("view after quit should be empty")
	}
}
