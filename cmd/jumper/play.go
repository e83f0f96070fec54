package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Mouse          - Press on the left or right half to steer, click to start
  Left/A, Right/D - Steer
  Space/Enter    - Start, continue after game over
  Enter/R        - Play again from the results screen
  Q/Ctrl+C       - Quit

Examples:
  jumper play
  jumper play --seed 42
  jumper play --config ./my-jumper.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs go to a file while the game owns the terminal
	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
	}
	logger := newLogger(logOut, "jumper")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - scores stay in memory
		store = nil
	} else {
		defer store.Close()
	}

	sound := newSound(logger)
	if closer, ok := sound.(*audio.Player); ok {
		defer closer.Close()
	}

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newSound opens the speaker unless --mute is set. A speaker that cannot be
// opened leaves the game silent.
func newSound(logger *log.Logger) jumper.SoundPlayer {
	if flagMute {
		return audio.Nop{}
	}
	p := audio.NewPlayer(0.5, logger)
	if err := p.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}
	}
	return p
}
