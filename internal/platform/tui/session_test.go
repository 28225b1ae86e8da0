package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func selectStub(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == "stub" {
			m.menu.cursor = i
		}
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{})

	m = selectStub(t, m)
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game", m.view)
	}
	if m.game.game.ID() != "stub" {
		t.Errorf("started %q", m.game.game.ID())
	}

	m, cmd := sendSession(t, m, runes("b"))
	if m.view != viewMenu {
		t.Errorf("view = %v after back, expected menu", m.view)
	}
	if cmd != nil {
		t.Error("back to menu should not quit the program")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), Options{Store: openStore(t)})

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v, expected scores", m.view)
	}
	if m.View() == "" {
		t.Error("empty scoreboard view")
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu", m.view)
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := selectStub(t, NewSessionModel(core.DefaultConfig(), Options{}))

	m, cmd := sendSession(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in game did not end the session")
	}
	if m.View() != "" {
		t.Error("view after quit should be empty")
	}
}

func TestSessionIgnoresOldTickLoop(t *testing.T) {
	m := selectStub(t, NewSessionModel(core.DefaultConfig(), Options{}))
	oldID := m.game.tickID

	m, _ = sendSession(t, m, runes("b"))
	m = selectStub(t, m)
	game := m.game.game.(*stubGame)

	_, cmd := sendSession(t, m, TickMsg{ID: oldID})
	if cmd != nil || len(game.frames) != 0 {
		t.Error("tick from the previous game drove the new one")
	}
}

func TestMenuShowsHighScores(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("stub", 42, 600); err != nil {
		t.Fatal(err)
	}

	menu := NewMenuModel(store, core.DefaultConfig())
	for _, item := range menu.items {
		if item.GameID == "stub" && item.HighScore != 42 {
			t.Errorf("HighScore = %d, expected 42", item.HighScore)
		}
	}
}
