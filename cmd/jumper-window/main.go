// jumper-window runs the jumper game in a native window, where the mouse or a
// touch steers the player.
//
// Usage:
//
//	jumper-window [--fps 60] [--seed 42] [--db path] [--config path] [--mute]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/audio"
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/window"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper-window",
	Short: "Jumper in a native window",
	Long: `Play jumper in a window. Hold the mouse button or touch the left or
right half of the window to steer; click, tap or press Space to start and to
continue after a game over. Esc or Q closes the window.

Examples:
  jumper-window
  jumper-window --seed 42 --mute`,
	Args:         cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper-window",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var sound jumper.SoundPlayer = audio.Nop{}
	if !flagMute {
		p := audio.NewPlayer(0.5, logger)
		if err := p.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer p.Close()
			sound = p
		}
	}

	return window.Run(window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  window.ScreenWidth,
			ScreenH:  window.ScreenHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})
}
