package sim

import "github.com/vovakirdan/tui-shmup/internal/core"

// SoundID names a one-shot sound effect.
type SoundID string

const (
	SoundShoot      SoundID = "shoot"
	SoundExplosion1 SoundID = "expl1"
	SoundExplosion2 SoundID = "expl2"
	SoundPlayerDie  SoundID = "player_die"
)

// explosionSounds is the pool a mob kill picks its sound from.
var explosionSounds = [...]SoundID{SoundExplosion1, SoundExplosion2}

// MusicCue asks the audio layer to start a track.
type MusicCue struct {
	Track  string
	Loop   bool
	Volume float64
}

// SessionState is the session's position in its Running -> GameOver lifecycle.
type SessionState int

const (
	Running SessionState = iota
	GameOver
)

// String returns the state name.
func (s SessionState) String() string {
	if s == GameOver {
		return "gameover"
	}
	return "running"
}

// DrawCommand places one sprite on the playfield.
type DrawCommand struct {
	Sprite Sprite
	Dest   core.Rect
}

// HUD holds the head-up display numbers.
type HUD struct {
	Score  int
	Shield int // Clamped to >= 0
	Lives  int
}

// Frame is the read-only result of one step. It shares no memory with the
// simulation.
type Frame struct {
	Tick   uint64
	Now    int64
	State  SessionState
	Draws  []DrawCommand
	HUD    HUD
	Sounds []SoundID
	Music  []MusicCue
}

func (f Frame) clone() Frame {
	f.Draws = append([]DrawCommand(nil), f.Draws...)
	if f.Sounds != nil {
		f.Sounds = append([]SoundID(nil), f.Sounds...)
	}
	if f.Music != nil {
		f.Music = append([]MusicCue(nil), f.Music...)
	}
	return f
}

// Hash returns a simple hash of the frame for determinism testing.
func (f *Frame) Hash() uint64 {
	h := f.Tick
	h = h*31 + uint64(f.Now)        //#nosec G115 -- hash computation
	h = h*31 + uint64(f.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(f.HUD.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(f.HUD.Shield) //#nosec G115 -- hash computation
	h = h*31 + uint64(f.HUD.Lives)  //#nosec G115 -- hash computation

	for _, d := range f.Draws {
		h = h*31 + uint64(d.Sprite.Kind)    //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Sprite.Variant) //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Sprite.Frame)   //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Sprite.Angle)   //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Dest.X)         //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Dest.Y)         //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Dest.W)         //#nosec G115 -- hash computation
		h = h*31 + uint64(d.Dest.H)         //#nosec G115 -- hash computation
	}

	for _, s := range f.Sounds {
		for _, c := range s {
			h = h*31 + uint64(c)
		}
	}

	return h
}
