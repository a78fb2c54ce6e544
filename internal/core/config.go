package core

// RuntimeConfig is what the platform tells a game when it (re)starts a session.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns available to the game
	ScreenH  int   // Terminal rows available to the game
	TickRate int   // Simulation ticks per second; 60 when unset
	Seed     int64 // RNG seed; the platform replaces 0 with a time-based seed
}

// TickMillis converts a tick count to elapsed milliseconds at this tick rate.
func (c RuntimeConfig) TickMillis(tick int) int64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int64(tick) * 1000 / int64(rate)
}

// GameState is the coarse status the platform needs from any game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// HUD carries the head-up display values a game wants the platform to show.
type HUD struct {
	Score  int
	Shield int // Percentage, already clamped to [0, MaxShield]
	Lives  int

	MaxShield int
	MaxLives  int
}

// AudioCueKind distinguishes one-shot sounds from music tracks.
type AudioCueKind int

const (
	CueSound AudioCueKind = iota
	CueMusic
)

// AudioCue is a fire-and-forget request for the audio layer.
type AudioCue struct {
	Kind   AudioCueKind
	ID     string  // Sound or track identifier
	Loop   bool    // Music only
	Volume float64 // Music only, 0.0 to 1.0
}

// StepResult is what one tick produced: the state after the tick and the
// audio cues raised during it, in the order they were raised.
type StepResult struct {
	State GameState
	Audio []AudioCue
}
