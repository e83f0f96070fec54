package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// setFlag overrides a package flag for the duration of the test.
func setFlag[T any](t *testing.T, flag *T, value T) {
	t.Helper()
	old := *flag
	*flag = value
	t.Cleanup(func() { *flag = old })
}

func TestRunResetClearsScoreAndRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	setFlag(t, &flagDBPath, dbPath)
	setFlag(t, &flagResetRuns, true)

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	storage.NewHighScores(store, nil).SetHighScore(7)
	if _, err := store.SaveRun(storage.Run{Score: 7, Height: 40, Cause: "fall"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	if err := runReset(nil, nil); err != nil {
		t.Fatalf("runReset() failed: %v", err)
	}

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if got := storage.NewHighScores(store, nil).HighScore(); got != 0 {
		t.Errorf("high score after reset = %d, expected 0", got)
	}
	if runs, _ := store.TopRuns(10); len(runs) != 0 {
		t.Errorf("runs after reset = %d, expected 0", len(runs))
	}
}

func TestRunResetReturnsStorageError(t *testing.T) {
	// A regular file where the database directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	setFlag(t, &flagDBPath, filepath.Join(blocker, "scores.db"))

	if err := runReset(nil, nil); err == nil {
		t.Error("runReset() with an unusable database path should fail")
	}
}

func TestRunPlayReturnsConfigError(t *testing.T) {
	setFlag(t, &flagConfig, filepath.Join(t.TempDir(), "missing.yaml"))

	if err := runPlay(nil, nil); err == nil {
		t.Error("runPlay() with a missing config should fail")
	}
}

func TestRunPlayReturnsValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	if err := os.WriteFile(path, []byte("generator:\n  jump_slack: -1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	setFlag(t, &flagConfig, path)

	if err := runPlay(nil, nil); err == nil {
		t.Error("runPlay() with an unclimbable config should fail")
	}
}
