package sim

import (
	"math"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Mob is a descending, spinning meteor.
type Mob struct {
	body
	spawner *spawner

	shape      int
	orig       Size
	vx, vy     int
	angle      int
	spin       int
	lastRotate int64
}

// spawner draws every random choice a mob makes from one seeded source.
type spawner struct {
	rng    *RNG
	tuning *Tuning
}

func (s *spawner) newMob(now int64) *Mob {
	t := s.tuning
	shape := s.rng.Intn(len(t.MobShapes))
	size := t.MobShapes[shape]

	m := &Mob{
		spawner:    s,
		shape:      shape,
		orig:       size,
		spin:       s.rng.In(t.MobSpin),
		lastRotate: now,
	}
	m.radius = int(float64(size.W) / 2 * t.MobRadiusFactor)
	m.rect = core.NewRect(0, 0, size.W, size.H)
	s.place(m)
	return m
}

// place puts the mob at a random point above the playfield with a new drift.
func (s *spawner) place(m *Mob) {
	t := s.tuning
	m.rect.X = s.rng.In(Range{Min: 0, Max: t.FieldW - m.rect.W})
	m.rect.Y = s.rng.In(t.MobSpawnY)
	m.vx = s.rng.In(t.MobDriftX)
	m.vy = s.rng.In(t.MobDriftY)
}

// Update spins the mob, drifts it, and recycles it above the playfield once
// it has left the visible area.
func (m *Mob) Update(now int64, _ Input) {
	if m.dead {
		return
	}

	m.rotate(now)

	m.rect.X += m.vx
	m.rect.Y += m.vy

	t := m.spawner.tuning
	if m.rect.Right() <= 0 || m.rect.X >= t.FieldW || m.rect.Y > t.FieldH {
		m.spawner.place(m)
	}
}

// rotate advances the spin by one step when the rotation interval has passed.
// The bounding box grows to fit the rotated sprite; the center and the
// collision radius stay fixed.
func (m *Mob) rotate(now int64) {
	if now-m.lastRotate <= m.spawner.tuning.MobRotationMillis {
		return
	}
	m.lastRotate = now
	m.angle = ((m.angle+m.spin)%360 + 360) % 360

	w, h := rotatedSize(m.orig, m.angle)
	m.rect = m.rect.Resize(w, h)
}

// rotatedSize returns the axis-aligned footprint of a w x h sprite turned by deg.
func rotatedSize(s Size, deg int) (int, int) {
	rad := float64(deg) * math.Pi / 180
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	w := float64(s.W)*cos + float64(s.H)*sin
	h := float64(s.W)*sin + float64(s.H)*cos
	return int(math.Ceil(w - 1e-9)), int(math.Ceil(h - 1e-9))
}

// Drift returns the per-tick velocity.
func (m *Mob) Drift() (int, int) { return m.vx, m.vy }

// Angle returns the rotation in degrees.
func (m *Mob) Angle() int { return m.angle }

// Sprite implements Entity.
func (m *Mob) Sprite() Sprite {
	return Sprite{Kind: KindMob, Variant: m.shape, Angle: m.angle}
}
