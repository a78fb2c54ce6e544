package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

const defaultGame = "shmup"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: shmup).

Controls:
  Left/A/H    - Steer left
  Right/D/L   - Steer right
  Space       - Fire
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, fewer and slower rocks
  normal - the configured values
  hard   - 2 lives, weaker shield, more rocks

Examples:
  shmup play
  shmup play shmup_classic
  shmup play --difficulty easy
  shmup play --config ./my-shmup.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fatal("unknown mode %q (run 'shmup list' to see available modes)", gameID)
	}

	s, err := loadSettings()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()
	logger.Info("config loaded", "source", s.source, "difficulty", s.preset)

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	sink := s.openAudio(logger)
	defer sink.Close()

	runErr := tui.Run(game, s.runtimeConfig(), tui.Options{
		Store:  storage.New(),
		Sink:   sink,
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		sink.Close()
		closeLog()
		fatal("running game: %v", runErr)
	}
}
