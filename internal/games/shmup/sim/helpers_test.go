package sim

import (
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// newQuietSim creates a session without initial mobs so tests can place
// their own.
func newQuietSim(t *testing.T) *Simulation {
	t.Helper()
	tun := DefaultTuning()
	tun.InitialMobs = 0
	s, err := New(tun, 7)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

// placeMob adds a motionless, non-spinning mob centered at (cx, cy).
func placeMob(s *Simulation, cx, cy, side, radius int) *Mob {
	m := s.spawner.newMob(s.now)
	m.orig = Size{W: side, H: side}
	m.rect = core.RectAround(cx, cy, side, side)
	m.radius = radius
	m.vx, m.vy = 0, 0
	m.spin = 0
	s.mobs = append(s.mobs, m)
	s.all = append(s.all, m)
	return m
}

func countKind(f Frame, k Kind) int {
	n := 0
	for _, d := range f.Draws {
		if d.Sprite.Kind == k {
			n++
		}
	}
	return n
}

func hasSound(f Frame, id SoundID) bool {
	for _, s := range f.Sounds {
		if s == id {
			return true
		}
	}
	return false
}
