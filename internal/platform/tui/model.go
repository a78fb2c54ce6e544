package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shmup/internal/audio"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

// statusRows is the number of terminal rows below the playfield:
// the shield/best-score line and the key help line.
const statusRows = 2

// Options carries the collaborators a game session talks to.
// Every field is optional.
type Options struct {
	Store  *storage.Store // Session score board
	Sink   audio.Sink     // Receives audio cues
	Logger *log.Logger    // Gameplay events

	// ScreenshotDir overrides ~/.shmup/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sink       audio.Sink
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	shieldBar  progress.Model
	config     core.RuntimeConfig
	fixedSeed  bool
	shotDir    string
	inputFrame core.InputFrame
	holds      *holdTracker
	now        func() time.Time
	gameState  core.GameState
	hud        core.HUD
	ticks      int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	sink := opts.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		sink:       sink,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       h,
		shieldBar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(shieldBarWidth)),
		config:     cfg,
		fixedSeed:  fixed,
		shotDir:    opts.ScreenshotDir,
		inputFrame: core.NewInputFrame(),
		holds:      newHoldTracker(HoldWindow),
		now:        time.Now,
	}
}

func playfieldHeight(screenH int) int {
	if screenH <= statusRows {
		return 1
	}
	return screenH - statusRows
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.holds.press(action, m.now())
	case core.ActionFire, core.ActionPause:
		m.inputFrame.Set(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The playfield is scaled into the new screen; the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.inputFrame.Clone()
	m.holds.apply(&frame, now)

	result := m.game.Step(frame)
	prev := m.hud
	m.gameState = result.State
	if !result.State.Paused {
		m.ticks++
	}

	for _, cue := range result.Audio {
		m.sink.Play(cue)
	}

	if hp, ok := m.game.(registry.HUDProvider); ok {
		m.hud = hp.HUD()
		if prev.MaxLives > 0 && m.hud.Lives < prev.Lives {
			m.logger.Info("life lost", "lives", m.hud.Lives, "score", m.hud.Score)
		}
	} else {
		m.hud.Score = m.gameState.Score
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		played := time.Duration(m.config.TickMillis(m.ticks)) * time.Millisecond
		if m.store != nil {
			m.store.SaveScore(m.game.ID(), m.gameState.Score, played)
		}
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "played", played)
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new session with a new seed unless one was fixed on
// the command line.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.hud = core.HUD{}
	m.ticks = 0
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.holds.reset()
	m.logger.Info("session restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".shmup", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	best := m.gameState.Score
	if m.store != nil {
		best = max(best, m.store.HighScore(m.game.ID()))
	}

	return RenderScreen(m.screen) + "\n" +
		renderStatus(m.shieldBar, m.hud, best, m.screen.Width()) + "\n" +
		renderHelp(m.help, m.keys.Keys())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
