package storage

import (
	"os"
	"path/filepath"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestPersistedInt(t *testing.T) {
	store := openTestStore(t)

	v, err := store.PersistedInt("HIGHSCORE", 7)
	if err != nil {
		t.Fatalf("PersistedInt() failed: %v", err)
	}
	if v != 7 {
		t.Errorf("PersistedInt() on missing key = %d, expected default 7", v)
	}

	if err := store.RaisePersistedInt("HIGHSCORE", 3); err != nil {
		t.Fatalf("RaisePersistedInt() failed: %v", err)
	}
	if err := store.RaisePersistedInt("HIGHSCORE", 5); err != nil {
		t.Fatalf("RaisePersistedInt() overwrite failed: %v", err)
	}
	if v, _ := store.PersistedInt("HIGHSCORE", 0); v != 5 {
		t.Errorf("PersistedInt() = %d, expected 5", v)
	}

	if err := store.DeletePersisted("HIGHSCORE"); err != nil {
		t.Fatalf("DeletePersisted() failed: %v", err)
	}
	if v, _ := store.PersistedInt("HIGHSCORE", 0); v != 0 {
		t.Errorf("PersistedInt() after delete = %d, expected 0", v)
	}
}

func TestPersistedIntSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.RaisePersistedInt("HIGHSCORE", 42); err != nil {
		t.Fatalf("RaisePersistedInt() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, _ := store.PersistedInt("HIGHSCORE", 0); v != 42 {
		t.Errorf("PersistedInt() after reopen = %d, expected 42", v)
	}
}

func TestTopRunsOrder(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 2, Height: 40, Cause: "fall", Seed: 1},
		{Score: 5, Height: 80, Cause: "enemy", Seed: 2},
		{Score: 5, Height: 120, Cause: "fall", Seed: 3},
		{Score: 9, Height: 295, Cause: "goal", Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns(3) returned %d runs", len(top))
	}

	wantSeeds := []int64{4, 3, 2}
	for i, want := range wantSeeds {
		if top[i].Seed != want {
			t.Errorf("top[%d].Seed = %d, expected %d", i, top[i].Seed, want)
		}
	}
	if top[0].Cause != "goal" || top[0].Height != 295 {
		t.Errorf("top run = %+v, expected the goal run", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(Run{Score: 2, Height: 30, Cause: "fall"})
	store.SaveRun(Run{Score: 6, Height: 296, Cause: "goal"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 6 || stats.AvgScore != 4 || stats.Goals != 1 {
		t.Errorf("stats = %+v, expected 2 runs, best 6, avg 4, 1 goal", stats)
	}
	if stats.BestHeight != 296 {
		t.Errorf("best height = %v, expected 296", stats.BestHeight)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if top, _ := store.TopRuns(10); len(top) != 0 {
		t.Errorf("TopRuns() after clear returned %d runs", len(top))
	}
}

func TestHighScoresAdapter(t *testing.T) {
	store := openTestStore(t)
	h := NewHighScores(store, nil)

	if h.HighScore() != 0 {
		t.Errorf("HighScore() on fresh store = %d, expected 0", h.HighScore())
	}

	h.SetHighScore(11)
	if h.HighScore() != 11 {
		t.Errorf("HighScore() = %d, expected 11", h.HighScore())
	}
	if v, _ := store.PersistedInt(HighScoreKey, 0); v != 11 {
		t.Errorf("stored %s = %d, expected 11", HighScoreKey, v)
	}

	if err := h.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if h.HighScore() != 0 {
		t.Errorf("HighScore() after reset = %d, expected 0", h.HighScore())
	}
}

func TestRaisePersistedInt(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		value    int
		expected int
	}{
		{3, 3},
		{5, 5},
		{4, 5},
		{5, 5},
		{9, 9},
	}
	for _, s := range steps {
		if err := store.RaisePersistedInt("HIGHSCORE", s.value); err != nil {
			t.Fatalf("RaisePersistedInt(%d) failed: %v", s.value, err)
		}
		if v, _ := store.PersistedInt("HIGHSCORE", 0); v != s.expected {
			t.Errorf("after RaisePersistedInt(%d) stored = %d, expected %d", s.value, v, s.expected)
		}
	}
}

func TestHighScoresSharedStoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)
	a := NewHighScores(store, nil)
	b := NewHighScores(store, nil)

	a.SetHighScore(3)
	if got := b.HighScore(); got != 3 {
		t.Fatalf("second adapter HighScore() = %d, expected 3", got)
	}

	// a beats the score b started from, then b finishes lower than a
	a.SetHighScore(5)
	b.SetHighScore(4)

	if got := a.HighScore(); got != 5 {
		t.Errorf("HighScore() after 5 then 4 = %d, expected 5", got)
	}
}

func TestHighScoresAdapterSwallowsErrors(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	h := NewHighScores(store, nil)
	store.Close()

	// Closed database: reads fall back, writes are dropped
	if h.HighScore() != 0 {
		t.Errorf("HighScore() on closed store = %d, expected 0", h.HighScore())
	}
	h.SetHighScore(5)
}
