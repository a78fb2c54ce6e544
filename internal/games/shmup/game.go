// Package shmup adapts the shooter simulation to the arcade platform.
// It maps platform actions to ship controls, ticks to milliseconds and
// simulation sounds to audio cues, and draws frames into a character screen.
package shmup

import (
	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/games/shmup/sim"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

// GameMode selects the rule set.
type GameMode int

const (
	ModeArcade  GameMode = iota // Shield and lives
	ModeClassic                 // Any hit ends the session
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements registry.Game on top of a sim.Simulation.
type Game struct {
	mode    GameMode
	runtime core.RuntimeConfig

	cfg       config.ShmupConfig
	cfgSource string
	cfgErr    error

	session *sim.Simulation
	frame   sim.Frame
	ticks   int
	paused  bool
}

// New creates a new shooter instance with shield and lives.
func New() *Game {
	return &Game{mode: ModeArcade}
}

// NewClassic creates a new shooter instance where the first hit is fatal.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "shmup_classic"
	}
	return "shmup"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Shmup (Classic)"
	}
	return "Shmup"
}

// Reset loads the configuration and starts a new session.
// A configuration that cannot be loaded falls back to the defaults; the
// error stays available through ConfigError.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, source, err := config.LoadShmup(configPath)
	if err != nil {
		cfg, source = config.DefaultShmupConfig(), config.SourceEmbedded
	}
	g.cfgErr = err
	g.cfgSource = source

	if difficultyPreset != "" {
		config.ApplyShmupPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeClassic {
		config.ApplyClassicRules(&cfg)
	}

	session, err := sim.New(cfg.Tuning(), runtime.Seed)
	if err != nil {
		// A preset pushed the loaded file out of range.
		g.cfgErr = err
		cfg = config.DefaultShmupConfig()
		session = sim.MustNew(cfg.Tuning(), runtime.Seed)
	}

	g.cfg = cfg
	g.session = session
	g.frame = session.Frame()
	g.ticks = 0
	g.paused = false
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.frame.State == sim.GameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.frame = g.session.Step(g.runtime.TickMillis(g.ticks), inputFor(in))

	return core.StepResult{
		State: g.State(),
		Audio: audioCues(g.frame),
	}
}

// inputFor maps platform actions to ship controls.
func inputFor(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	}
}

// audioCues converts the frame's sounds and music into platform cues.
func audioCues(f sim.Frame) []core.AudioCue {
	if len(f.Sounds) == 0 && len(f.Music) == 0 {
		return nil
	}

	cues := make([]core.AudioCue, 0, len(f.Sounds)+len(f.Music))
	for _, m := range f.Music {
		cues = append(cues, core.AudioCue{Kind: core.CueMusic, ID: m.Track, Loop: m.Loop, Volume: m.Volume})
	}
	for _, s := range f.Sounds {
		cues = append(cues, core.AudioCue{Kind: core.CueSound, ID: string(s)})
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.frame.HUD.Score,
		GameOver: g.frame.State == sim.GameOver,
		Paused:   g.paused,
	}
}

// HUD returns the values for the platform status line.
func (g *Game) HUD() core.HUD {
	return core.HUD{
		Score:     g.frame.HUD.Score,
		Shield:    g.frame.HUD.Shield,
		Lives:     g.frame.HUD.Lives,
		MaxShield: g.cfg.Player.Shield,
		MaxLives:  g.cfg.Player.Lives,
	}
}

// Frame returns the most recent simulation frame.
func (g *Game) Frame() sim.Frame {
	return g.frame
}

// ConfigSource reports where the active configuration was loaded from.
func (g *Game) ConfigSource() string {
	return g.cfgSource
}

// ConfigError returns the error that forced a fallback to default
// configuration on the last Reset, or nil.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Config returns the active configuration after presets.
func (g *Game) Config() config.ShmupConfig {
	return g.cfg
}

// Register the games with the registry
func init() {
	registry.Register("shmup", func() registry.Game {
		return New()
	})
	registry.Register("shmup_classic", func() registry.Game {
		return NewClassic()
	})
}
