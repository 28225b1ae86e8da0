package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("jumper_bricks", s, 600); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("jumper", 0, 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("jumper_bricks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Ticks != 600 {
		t.Errorf("Ticks = %d, expected 600", scores[0].Ticks)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	other, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 jumper score, got %d", len(other))
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for i := range 5 {
		id, _ := store.SaveScore("jumper", (i%3)*100, 0)
		ids = append(ids, id)
	}

	// Scores 0,100,200,0,100: top three are 200, then the two 100s in play order.
	scores, err := store.TopScores("jumper", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].ID != ids[1] || scores[2].ID != ids[4] {
		t.Errorf("unexpected order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("jumper", 100, 0)
	store.SaveScore("jumper", 300, 0)
	store.SaveScore("jumper", 200, 0)

	high, err = store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("jumper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() of unplayed variant = %+v", empty)
	}

	store.SaveScore("jumper", 10, 60)
	store.SaveScore("jumper", 30, 120)

	stats, err := store.Stats("jumper")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalTicks != 180 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("jumper", 100, 0)
	store.SaveScore("jumper", 200, 0)
	store.SaveScore("jumper_bricks", 300, 0)

	if err := store.ClearScores("jumper"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("jumper", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 jumper scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores("jumper_bricks", 10)
	if len(kept) != 1 {
		t.Error("jumper_bricks scores should not be affected by clearing jumper")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.jumper/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() error = %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".jumper", "scores.db")) {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome() changed an absolute path to %q", got)
	}
	if got, _ := ExpandHome("~other/x.db"); got != "~other/x.db" {
		t.Errorf("ExpandHome() expanded another user's home: %q", got)
	}
}
