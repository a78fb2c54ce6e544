// Package config provides YAML-based configuration loading and difficulty
// presets for the shooter.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup/sim"
)

// ShmupConfig contains all configuration for a shooter session.
type ShmupConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Mobs       MobsConfig       `yaml:"mobs"`
	Bullets    BulletsConfig    `yaml:"bullets"`
	Explosions ExplosionsConfig `yaml:"explosions"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Audio      AudioConfig      `yaml:"audio"`
}

// DisplayConfig defines how fast the session is stepped.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}

// FieldConfig defines the logical playfield size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width        int   `yaml:"width"`
	Height       int   `yaml:"height"`
	Radius       int   `yaml:"radius"`
	Speed        int   `yaml:"speed"`
	BottomMargin int   `yaml:"bottom_margin"`
	HiddenOffset int   `yaml:"hidden_offset"` // How far below the field a lost ship is parked
	HiddenMillis int64 `yaml:"hidden_ms"`
	Lives        int   `yaml:"lives"`
	Shield       int   `yaml:"shield"`
}

// MobsConfig defines meteor spawning and motion.
type MobsConfig struct {
	Count        int        `yaml:"count"`
	RadiusFactor float64    `yaml:"radius_factor"`
	RotationMs   int64      `yaml:"rotation_ms"`
	SpawnY       sim.Range  `yaml:"spawn_y"`
	DriftX       sim.Range  `yaml:"drift_x"`
	DriftY       sim.Range  `yaml:"drift_y"`
	Spin         sim.Range  `yaml:"spin"`
	Shapes       []sim.Size `yaml:"shapes"`
}

// BulletsConfig defines the player's projectile.
type BulletsConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	VelocityY int `yaml:"velocity_y"`
}

// ExplosionsConfig defines the animation frame footprints per class.
type ExplosionsConfig struct {
	FrameMs int64      `yaml:"frame_ms"`
	Large   []sim.Size `yaml:"large"`
	Small   []sim.Size `yaml:"small"`
	Player  []sim.Size `yaml:"player"`
}

// ScoringConfig defines points per kill.
type ScoringConfig struct {
	Base int `yaml:"base"` // A kill scores base minus the mob radius
}

// AudioConfig defines music and effect levels.
type AudioConfig struct {
	Music         string  `yaml:"music"`
	MusicVolume   float64 `yaml:"music_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
	Muted         bool    `yaml:"muted"`
}

// Tuning converts the configuration into simulation parameters.
func (c ShmupConfig) Tuning() sim.Tuning {
	t := sim.Tuning{
		FieldW: c.Field.Width,
		FieldH: c.Field.Height,

		PlayerW:            c.Player.Width,
		PlayerH:            c.Player.Height,
		PlayerRadius:       c.Player.Radius,
		PlayerSpeed:        c.Player.Speed,
		PlayerBottomMargin: c.Player.BottomMargin,
		HiddenOffset:       c.Player.HiddenOffset,
		HiddenMillis:       c.Player.HiddenMillis,
		StartLives:         c.Player.Lives,
		MaxShield:          c.Player.Shield,

		InitialMobs:       c.Mobs.Count,
		MobShapes:         append([]sim.Size(nil), c.Mobs.Shapes...),
		MobRadiusFactor:   c.Mobs.RadiusFactor,
		MobSpawnY:         c.Mobs.SpawnY,
		MobDriftX:         c.Mobs.DriftX,
		MobDriftY:         c.Mobs.DriftY,
		MobSpin:           c.Mobs.Spin,
		MobRotationMillis: c.Mobs.RotationMs,

		BulletW:  c.Bullets.Width,
		BulletH:  c.Bullets.Height,
		BulletVY: c.Bullets.VelocityY,

		ExplosionFrameMillis: c.Explosions.FrameMs,

		ScoreBase: c.Scoring.Base,

		MusicTrack:  c.Audio.Music,
		MusicVolume: c.Audio.MusicVolume,
	}
	t.ExplosionFrames[sim.ExplosionLarge] = append([]sim.Size(nil), c.Explosions.Large...)
	t.ExplosionFrames[sim.ExplosionSmall] = append([]sim.Size(nil), c.Explosions.Small...)
	t.ExplosionFrames[sim.ExplosionPlayer] = append([]sim.Size(nil), c.Explosions.Player...)
	return t
}

// Validate checks the configuration can drive a session.
func (c ShmupConfig) Validate() error {
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: display fps must be positive, got %d", c.Display.FPS)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.EffectsVolume < 0 {
		return fmt.Errorf("config: audio volumes must not be negative")
	}
	if err := c.Tuning().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted difficulty names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a difficulty name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
