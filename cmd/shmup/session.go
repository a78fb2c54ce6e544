package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shmup/internal/audio"
	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup"
)

// settings is the resolved command-line and file configuration.
type settings struct {
	game   config.ShmupConfig
	source string
	preset config.DifficultyPreset
}

// loadSettings validates the global flags, loads the configuration, and
// hands both to the game package so new game instances pick them up.
func loadSettings() (settings, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return settings{}, err
	}
	if flagVolume < 0 || flagVolume > 1 {
		return settings{}, fmt.Errorf("volume must be between 0 and 1, got %v", flagVolume)
	}
	if flagFPS < 0 {
		return settings{}, fmt.Errorf("fps must not be negative, got %d", flagFPS)
	}

	cfg, source, err := config.LoadShmup(flagConfig)
	if err != nil {
		return settings{}, err
	}

	shmup.SetConfigPath(flagConfig)
	shmup.SetDifficultyPreset(preset)

	return settings{game: cfg, source: source, preset: preset}, nil
}

// runtimeConfig builds the platform config for the current terminal.
func (s settings) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	fps := flagFPS
	if fps == 0 {
		fps = s.game.Display.FPS
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     flagSeed,
	}
}

// openAudio starts the speaker unless audio is muted by flag or config.
func (s settings) openAudio(logger *log.Logger) audio.Sink {
	muted := flagMute || s.game.Audio.Muted || flagVolume == 0
	return audio.Open(muted, audio.Options{
		EffectsVolume: s.game.Audio.EffectsVolume * flagVolume,
		MusicVolume:   flagVolume,
		Logger:        logger,
	})
}

// newLogger returns a logger writing to w with the shared options.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shmup",
	})
}

// openLogFile returns the gameplay logger for interactive commands. The
// terminal belongs to the game, so logs only go to --log-file when set.
func openLogFile() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return newLogger(f), func() { f.Close() }, nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
