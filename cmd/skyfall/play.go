package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/audio"
	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/highscore"
	"github.com/vovakirdan/skyfall/internal/logging"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Skyfall",
	Long: `Start a game in this terminal.

Controls:
  Left/Right, A/D  - Move
  Up/Down, Enter   - Choose character
  P/Esc            - Pause
  R                - Play again (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives (default)
  hard   - 2 lives
  fixed  - 3 lives, items never speed up

Examples:
  skyfall play
  skyfall play --difficulty easy
  skyfall play --difficulty fixed --seed 42
  skyfall play --config ./my-skyfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", logging.DefaultLogPath, "Where to write the game log")
}

func runPlay(_ *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so the log goes to a file or nowhere
	logger, closeLog := playLogger(flagLogFile, level, os.Stderr)
	defer closeLog()

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	// Open score storage
	var persister highscore.Persister = highscore.NewMemoryPersister()
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
	} else {
		defer store.Close()
		persister = store
		opts.Runs = store
	}
	opts.Scores = highscore.New(persister, logger)
	opts.Scores.Load()

	if !flagMute {
		player := audio.NewPlayer(logger)
		if audioErr := player.Initialize(); audioErr != nil {
			logger.Warn("audio unavailable", "error", audioErr)
		} else {
			defer player.Close()
		}
		opts.Sounds = player
	}

	logger.Info("starting game", "difficulty", flagDifficulty, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// loadGameConfig loads the YAML configuration and applies the preset.
// Without --difficulty the file's settings are used as they are.
func loadGameConfig(path, difficulty string) (config.SkyfallConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.SkyfallConfig{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.SkyfallConfig{}, err
	}

	if difficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// playLogger opens the game log. If the file cannot be opened it writes one
// warning to warn and discards the log, since the terminal belongs to the TUI
// from here on.
func playLogger(path string, level log.Level, warn io.Writer) (*log.Logger, func()) {
	f, err := logging.OpenFile(path)
	if err != nil {
		fmt.Fprintf(warn, "Warning: game log disabled: %v\n", err)
		return logging.New(io.Discard, "skyfall", level), func() {}
	}
	return logging.New(f, "skyfall", level), func() { f.Close() }
}
