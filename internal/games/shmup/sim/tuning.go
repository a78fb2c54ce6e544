// Package sim is the shoot-'em-up simulation core: player movement, mob
// spawning and recycling, bullets, explosion animations and the shield/lives
// state machine. It is a pure function of elapsed milliseconds and input; it
// owns no window, terminal, file or audio device.
package sim

import (
	"errors"
	"fmt"
)

// Playfield and entity geometry, in logical units.
const (
	FieldWidth  = 360
	FieldHeight = 480

	PlayerWidth        = 50
	PlayerHeight       = 38
	PlayerRadius       = 20
	PlayerBottomMargin = 10 // Gap between ship bottom and field bottom
	PlayerSpeed        = 5  // Units per tick while steering
	HiddenOffset       = 200

	BulletWidth     = 10
	BulletHeight    = 54
	BulletVelocityY = -10

	MobRadiusFactor = 0.85 // Radius = factor * half sprite width
)

// Timing, in milliseconds.
const (
	HiddenMillis         = 1000
	MobRotationMillis    = 50
	ExplosionFrameMillis = 75
)

// Spawn ranges. Each is half-open [Min, Max).
var (
	MobSpawnY    = Range{Min: -150, Max: -100}
	MobDriftX    = Range{Min: -3, Max: 3}
	MobDriftY    = Range{Min: 1, Max: 8}
	MobSpinRange = Range{Min: -8, Max: 8}
)

// Session rules.
const (
	StartLives  = 3
	MaxShield   = 100
	InitialMobs = 8
	ScoreBase   = 50 // Mob kill scores ScoreBase - radius

	MusicTrack  = "theme"
	MusicVolume = 0.4
)

// ErrInvalidTuning is returned by New and Tuning.Validate for unusable parameters.
var ErrInvalidTuning = errors.New("sim: invalid tuning")

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Empty reports whether the range contains no integers.
func (r Range) Empty() bool {
	return r.Max <= r.Min
}

// Size is a sprite or frame footprint.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ExplosionClass selects an explosion animation sequence.
type ExplosionClass int

const (
	ExplosionLarge  ExplosionClass = iota // Mob shot down
	ExplosionSmall                        // Mob rammed the player
	ExplosionPlayer                       // Player lost a life
	explosionClassCount
)

// String returns the class name.
func (c ExplosionClass) String() string {
	switch c {
	case ExplosionLarge:
		return "large"
	case ExplosionSmall:
		return "small"
	case ExplosionPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// DefaultMobShapes is the meteor catalog a mob picks its sprite from.
func DefaultMobShapes() []Size {
	return []Size{
		{W: 101, H: 84},
		{W: 120, H: 98},
		{W: 43, H: 43},
		{W: 28, H: 28},
		{W: 28, H: 28},
		{W: 29, H: 26},
		{W: 18, H: 18},
	}
}

// DefaultExplosionFrames returns the nine-frame sequences for each class.
// Large and small explosions keep a constant footprint; the player death
// blast grows every frame.
func DefaultExplosionFrames() [explosionClassCount][]Size {
	var frames [explosionClassCount][]Size
	for i := 0; i < 9; i++ {
		frames[ExplosionLarge] = append(frames[ExplosionLarge], Size{W: 75, H: 75})
		frames[ExplosionSmall] = append(frames[ExplosionSmall], Size{W: 32, H: 32})
		side := 40 + i*10
		frames[ExplosionPlayer] = append(frames[ExplosionPlayer], Size{W: side, H: side})
	}
	return frames
}

// Tuning holds every parameter of a session. DefaultTuning returns the
// values above; callers may override fields before passing it to New.
type Tuning struct {
	FieldW, FieldH int

	PlayerW, PlayerH   int
	PlayerRadius       int
	PlayerSpeed        int
	PlayerBottomMargin int
	HiddenOffset       int
	HiddenMillis       int64
	StartLives         int
	MaxShield          int

	InitialMobs       int
	MobShapes         []Size
	MobRadiusFactor   float64
	MobSpawnY         Range
	MobDriftX         Range
	MobDriftY         Range
	MobSpin           Range
	MobRotationMillis int64

	BulletW, BulletH int
	BulletVY         int

	ExplosionFrames      [explosionClassCount][]Size
	ExplosionFrameMillis int64

	ScoreBase int

	MusicTrack  string
	MusicVolume float64
}

// DefaultTuning returns the standard session parameters.
func DefaultTuning() Tuning {
	return Tuning{
		FieldW: FieldWidth,
		FieldH: FieldHeight,

		PlayerW:            PlayerWidth,
		PlayerH:            PlayerHeight,
		PlayerRadius:       PlayerRadius,
		PlayerSpeed:        PlayerSpeed,
		PlayerBottomMargin: PlayerBottomMargin,
		HiddenOffset:       HiddenOffset,
		HiddenMillis:       HiddenMillis,
		StartLives:         StartLives,
		MaxShield:          MaxShield,

		InitialMobs:       InitialMobs,
		MobShapes:         DefaultMobShapes(),
		MobRadiusFactor:   MobRadiusFactor,
		MobSpawnY:         MobSpawnY,
		MobDriftX:         MobDriftX,
		MobDriftY:         MobDriftY,
		MobSpin:           MobSpinRange,
		MobRotationMillis: MobRotationMillis,

		BulletW:  BulletWidth,
		BulletH:  BulletHeight,
		BulletVY: BulletVelocityY,

		ExplosionFrames:      DefaultExplosionFrames(),
		ExplosionFrameMillis: ExplosionFrameMillis,

		ScoreBase: ScoreBase,

		MusicTrack:  MusicTrack,
		MusicVolume: MusicVolume,
	}
}

// Validate checks that every parameter can drive a session. Spawn ranges
// must be non-empty, mobs must fall strictly downward and start above the
// playfield, and every sprite must fit horizontally inside the field.
func (t Tuning) Validate() error {
	switch {
	case t.FieldW <= 0 || t.FieldH <= 0:
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalidTuning, t.FieldW, t.FieldH)
	case t.PlayerW <= 0 || t.PlayerH <= 0 || t.PlayerW > t.FieldW:
		return fmt.Errorf("%w: player size %dx%d", ErrInvalidTuning, t.PlayerW, t.PlayerH)
	case t.PlayerRadius <= 0:
		return fmt.Errorf("%w: player radius %d", ErrInvalidTuning, t.PlayerRadius)
	case t.PlayerSpeed <= 0:
		return fmt.Errorf("%w: player speed %d", ErrInvalidTuning, t.PlayerSpeed)
	case t.HiddenOffset < t.PlayerH:
		return fmt.Errorf("%w: hidden offset %d does not clear the playfield", ErrInvalidTuning, t.HiddenOffset)
	case t.HiddenMillis < 0:
		return fmt.Errorf("%w: hidden duration %d", ErrInvalidTuning, t.HiddenMillis)
	case t.StartLives <= 0:
		return fmt.Errorf("%w: start lives %d", ErrInvalidTuning, t.StartLives)
	case t.MaxShield <= 0:
		return fmt.Errorf("%w: max shield %d", ErrInvalidTuning, t.MaxShield)
	case t.InitialMobs < 0:
		return fmt.Errorf("%w: initial mobs %d", ErrInvalidTuning, t.InitialMobs)
	case len(t.MobShapes) == 0:
		return fmt.Errorf("%w: no mob shapes", ErrInvalidTuning)
	case t.MobRadiusFactor <= 0:
		return fmt.Errorf("%w: mob radius factor %v", ErrInvalidTuning, t.MobRadiusFactor)
	case t.MobSpawnY.Empty() || t.MobSpawnY.Max > 0:
		return fmt.Errorf("%w: mob spawn band %v must be non-empty and above the field", ErrInvalidTuning, t.MobSpawnY)
	case t.MobDriftX.Empty():
		return fmt.Errorf("%w: mob drift x %v", ErrInvalidTuning, t.MobDriftX)
	case t.MobDriftY.Empty() || t.MobDriftY.Min <= 0:
		return fmt.Errorf("%w: mob drift y %v must be strictly downward", ErrInvalidTuning, t.MobDriftY)
	case t.MobSpin.Empty():
		return fmt.Errorf("%w: mob spin %v", ErrInvalidTuning, t.MobSpin)
	case t.MobRotationMillis <= 0:
		return fmt.Errorf("%w: mob rotation interval %d", ErrInvalidTuning, t.MobRotationMillis)
	case t.BulletW <= 0 || t.BulletH <= 0:
		return fmt.Errorf("%w: bullet size %dx%d", ErrInvalidTuning, t.BulletW, t.BulletH)
	case t.BulletVY >= 0:
		return fmt.Errorf("%w: bullet velocity %d must point up", ErrInvalidTuning, t.BulletVY)
	case t.ExplosionFrameMillis <= 0:
		return fmt.Errorf("%w: explosion frame interval %d", ErrInvalidTuning, t.ExplosionFrameMillis)
	}

	for i, s := range t.MobShapes {
		if s.W <= 0 || s.H <= 0 || s.W >= t.FieldW {
			return fmt.Errorf("%w: mob shape %d is %dx%d", ErrInvalidTuning, i, s.W, s.H)
		}
	}

	for c, frames := range t.ExplosionFrames {
		if len(frames) == 0 {
			return fmt.Errorf("%w: %s explosion has no frames", ErrInvalidTuning, ExplosionClass(c))
		}
	}

	return nil
}
