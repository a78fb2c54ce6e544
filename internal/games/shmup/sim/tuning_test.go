package sim

import (
	"errors"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning().Validate() = %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero field", func(t *Tuning) { t.FieldW = 0 }},
		{"player wider than field", func(t *Tuning) { t.PlayerW = t.FieldW + 1 }},
		{"no player speed", func(t *Tuning) { t.PlayerSpeed = 0 }},
		{"hidden offset inside field", func(t *Tuning) { t.HiddenOffset = 1 }},
		{"no lives", func(t *Tuning) { t.StartLives = 0 }},
		{"no shield", func(t *Tuning) { t.MaxShield = 0 }},
		{"negative mob count", func(t *Tuning) { t.InitialMobs = -1 }},
		{"no mob shapes", func(t *Tuning) { t.MobShapes = nil }},
		{"mob as wide as field", func(t *Tuning) { t.MobShapes = []Size{{W: t.FieldW, H: 10}} }},
		{"spawn band inside field", func(t *Tuning) { t.MobSpawnY = Range{Min: 10, Max: 20} }},
		{"empty spawn band", func(t *Tuning) { t.MobSpawnY = Range{Min: -100, Max: -100} }},
		{"empty drift x", func(t *Tuning) { t.MobDriftX = Range{Min: 3, Max: -3} }},
		{"mobs rising", func(t *Tuning) { t.MobDriftY = Range{Min: 0, Max: 8} }},
		{"empty spin", func(t *Tuning) { t.MobSpin = Range{} }},
		{"bullet falling", func(t *Tuning) { t.BulletVY = 10 }},
		{"no explosion interval", func(t *Tuning) { t.ExplosionFrameMillis = 0 }},
		{"no explosion frames", func(t *Tuning) { t.ExplosionFrames[ExplosionSmall] = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTuning()
			tc.mutate(&tun)

			err := tun.Validate()
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("Validate() = %v, expected ErrInvalidTuning", err)
			}

			if _, err := New(tun, 1); !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("New() = %v, expected ErrInvalidTuning", err)
			}
		})
	}
}

func TestRNGRange(t *testing.T) {
	rng := NewRNG(99)
	rg := Range{Min: -3, Max: 3}
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := rng.In(rg)
		if v < rg.Min || v >= rg.Max {
			t.Fatalf("In(%v) = %d, out of range", rg, v)
		}
		seen[v] = true
	}

	if len(seen) != 6 {
		t.Errorf("expected all 6 values of %v to appear, saw %d", rg, len(seen))
	}

	if got := rng.In(Range{Min: 4, Max: 4}); got != 4 {
		t.Errorf("In(empty) = %d, expected Min", got)
	}
}
