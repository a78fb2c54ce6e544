package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-shmup/internal/games/shmup/sim"
)

//go:embed defaults/shmup.yaml
var defaultShmupYAML []byte

// DefaultFPS is the stepping rate of the stock configuration.
const DefaultFPS = 30

// DefaultShmupConfig returns the default shooter configuration.
// It matches the embedded defaults/shmup.yaml.
func DefaultShmupConfig() ShmupConfig {
	t := sim.DefaultTuning()
	return ShmupConfig{
		Display: DisplayConfig{FPS: DefaultFPS},
		Field: FieldConfig{
			Width:  t.FieldW,
			Height: t.FieldH,
		},
		Player: PlayerConfig{
			Width:        t.PlayerW,
			Height:       t.PlayerH,
			Radius:       t.PlayerRadius,
			Speed:        t.PlayerSpeed,
			BottomMargin: t.PlayerBottomMargin,
			HiddenOffset: t.HiddenOffset,
			HiddenMillis: t.HiddenMillis,
			Lives:        t.StartLives,
			Shield:       t.MaxShield,
		},
		Mobs: MobsConfig{
			Count:        t.InitialMobs,
			RadiusFactor: t.MobRadiusFactor,
			RotationMs:   t.MobRotationMillis,
			SpawnY:       t.MobSpawnY,
			DriftX:       t.MobDriftX,
			DriftY:       t.MobDriftY,
			Spin:         t.MobSpin,
			Shapes:       t.MobShapes,
		},
		Bullets: BulletsConfig{
			Width:     t.BulletW,
			Height:    t.BulletH,
			VelocityY: t.BulletVY,
		},
		Explosions: ExplosionsConfig{
			FrameMs: t.ExplosionFrameMillis,
			Large:   t.ExplosionFrames[sim.ExplosionLarge],
			Small:   t.ExplosionFrames[sim.ExplosionSmall],
			Player:  t.ExplosionFrames[sim.ExplosionPlayer],
		},
		Scoring: ScoringConfig{Base: t.ScoreBase},
		Audio: AudioConfig{
			Music:         t.MusicTrack,
			MusicVolume:   t.MusicVolume,
			EffectsVolume: 0.8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
// Both shooter variants share one file.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shmup", "shmup_classic":
		return defaultShmupYAML
	default:
		return nil
	}
}
