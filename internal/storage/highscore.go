package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the prefs key holding the best score.
const HighScoreKey = "HIGHSCORE"

// HighScores adapts a Store to the game's high score collaborator. Storage
// failures are logged and never reach the game loop: reads fall back to 0,
// writes are dropped.
type HighScores struct {
	store  *Store
	logger *log.Logger
}

// NewHighScores creates the adapter. A nil logger discards warnings.
func NewHighScores(store *Store, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{store: store, logger: logger}
}

// HighScore returns the persisted high score.
func (h *HighScores) HighScore() int {
	score, err := h.store.PersistedInt(HighScoreKey, 0)
	if err != nil {
		h.logger.Warn("cannot read high score", "err", err)
		return 0
	}
	return score
}

// SetHighScore persists score unless another session already stored a
// higher one.
func (h *HighScores) SetHighScore(score int) {
	if err := h.store.RaisePersistedInt(HighScoreKey, score); err != nil {
		h.logger.Warn("cannot persist high score", "score", score, "err", err)
	}
}

// Reset removes the persisted high score.
func (h *HighScores) Reset() error {
	return h.store.DeletePersisted(HighScoreKey)
}
