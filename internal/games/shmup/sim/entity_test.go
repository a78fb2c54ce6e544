package sim

import (
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestBulletExpiry(t *testing.T) {
	tun := DefaultTuning()

	tests := []struct {
		bottom   int
		expected int // Updates until the bullet dies
	}{
		{432, 44},
		{430, 43},
		{55, 6},
		{10, 1},
		{1, 1},
	}

	for _, tc := range tests {
		b := newBullet(100, tc.bottom, &tun)
		updates := 0
		for b.Alive() && updates < 1000 {
			b.Update(0, Input{})
			updates++
		}

		if updates != tc.expected {
			t.Errorf("bullet from bottom=%d died after %d updates, expected %d", tc.bottom, updates, tc.expected)
		}
	}
}

func TestBulletGeometry(t *testing.T) {
	tun := DefaultTuning()
	b := newBullet(180, 432, &tun)

	r := b.Bounds()
	if r.W != BulletWidth || r.H != BulletHeight {
		t.Errorf("bullet size = %dx%d, expected %dx%d", r.W, r.H, BulletWidth, BulletHeight)
	}
	if cx, _ := r.Center(); cx != 180 {
		t.Errorf("bullet center x = %d, expected 180", cx)
	}
	if r.Bottom() != 432 {
		t.Errorf("bullet bottom = %d, expected 432", r.Bottom())
	}
}

func TestKillIsIdempotent(t *testing.T) {
	tun := DefaultTuning()
	b := newBullet(100, 300, &tun)

	b.Kill()
	b.Kill()
	if b.Alive() {
		t.Fatal("bullet should be dead after Kill")
	}

	before := b.Bounds()
	b.Update(0, Input{})
	if b.Bounds() != before {
		t.Error("Update on a dead bullet should not move it")
	}
}

func TestDeadEntitiesCompactedOnce(t *testing.T) {
	s := newQuietSim(t)
	m := placeMob(s, 100, 100, 30, 12)
	placeMob(s, 200, 100, 30, 12)

	m.Kill()
	m.Kill()
	s.compact()
	s.compact()

	if s.MobCount() != 1 {
		t.Errorf("MobCount() = %d, expected 1", s.MobCount())
	}
	for _, e := range s.all {
		if e == Entity(m) {
			t.Error("dead mob still in the entity list")
		}
	}
}

func TestPlayerStartPosition(t *testing.T) {
	tun := DefaultTuning()
	p := newPlayer(&tun)

	r := p.Bounds()
	expected := core.NewRect(155, 432, 50, 38)
	if r != expected {
		t.Errorf("player bounds = %+v, expected %+v", r, expected)
	}
	if p.Shield() != MaxShield || p.Lives() != StartLives {
		t.Errorf("shield/lives = %d/%d, expected %d/%d", p.Shield(), p.Lives(), MaxShield, StartLives)
	}
	if p.Radius() != PlayerRadius {
		t.Errorf("radius = %d, expected %d", p.Radius(), PlayerRadius)
	}
}

func TestPlayerSteering(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		expected int
	}{
		{"idle", Input{}, 0},
		{"left", Input{Left: true}, -PlayerSpeed},
		{"right", Input{Right: true}, PlayerSpeed},
		{"both", Input{Left: true, Right: true}, PlayerSpeed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTuning()
			p := newPlayer(&tun)
			x := p.Bounds().X

			p.Update(16, tc.in)

			if p.SpeedX() != tc.expected {
				t.Errorf("SpeedX() = %d, expected %d", p.SpeedX(), tc.expected)
			}
			if got := p.Bounds().X - x; got != tc.expected {
				t.Errorf("moved %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestPlayerClampedAtEdges(t *testing.T) {
	tun := DefaultTuning()
	p := newPlayer(&tun)

	for i := 0; i < 100; i++ {
		p.Update(int64(i), Input{Left: true})
	}
	if p.Bounds().X != 0 {
		t.Errorf("after holding left X = %d, expected 0", p.Bounds().X)
	}

	for i := 0; i < 100; i++ {
		p.Update(int64(i), Input{Right: true})
	}
	if p.Bounds().Right() != FieldWidth {
		t.Errorf("after holding right Right() = %d, expected %d", p.Bounds().Right(), FieldWidth)
	}
}

func TestPlayerHideAndReveal(t *testing.T) {
	tun := DefaultTuning()
	p := newPlayer(&tun)
	spawn := p.Bounds()

	p.hide(500)
	if !p.Hidden() {
		t.Fatal("player should be hidden")
	}
	cx, cy := p.Bounds().Center()
	if cx != FieldWidth/2 || cy != FieldHeight+HiddenOffset {
		t.Errorf("hidden center = (%d,%d), expected (%d,%d)", cx, cy, FieldWidth/2, FieldHeight+HiddenOffset)
	}

	p.Update(1500, Input{})
	if !p.Hidden() {
		t.Error("player revealed at exactly the timeout, expected strictly after")
	}

	p.Update(1501, Input{})
	if p.Hidden() {
		t.Fatal("player should be revealed after the timeout")
	}
	if p.Bounds() != spawn {
		t.Errorf("revealed bounds = %+v, expected %+v", p.Bounds(), spawn)
	}
}

func TestMobSpawnRanges(t *testing.T) {
	tun := DefaultTuning()
	sp := &spawner{rng: NewRNG(11), tuning: &tun}

	for i := 0; i < 500; i++ {
		m := sp.newMob(0)
		r := m.Bounds()
		if r.X < 0 || r.X >= FieldWidth-r.W {
			t.Fatalf("mob x = %d outside [0,%d)", r.X, FieldWidth-r.W)
		}
		if r.Y < MobSpawnY.Min || r.Y >= MobSpawnY.Max {
			t.Fatalf("mob y = %d outside %v", r.Y, MobSpawnY)
		}
		vx, vy := m.Drift()
		if vx < MobDriftX.Min || vx >= MobDriftX.Max || vy < MobDriftY.Min || vy >= MobDriftY.Max {
			t.Fatalf("mob drift (%d,%d) out of range", vx, vy)
		}
		if expected := int(float64(r.W) / 2 * MobRadiusFactor); m.Radius() != expected {
			t.Fatalf("mob radius = %d, expected %d", m.Radius(), expected)
		}
	}
}

func TestMobRecycledAfterLeavingField(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		vx, vy int
	}{
		{"below", 100, FieldHeight, 0, 1},
		{"left", -1, 100, -3, 1},
		{"right", FieldWidth - 1, 100, 2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTuning()
			sp := &spawner{rng: NewRNG(5), tuning: &tun}
			m := sp.newMob(0)
			m.rect.X, m.rect.Y = tc.x, tc.y
			if tc.x < 0 {
				m.rect.X = tc.x - m.rect.W + 3
			}
			m.vx, m.vy = tc.vx, tc.vy

			m.Update(10, Input{})

			if !m.Alive() {
				t.Fatal("recycled mob should stay alive")
			}
			r := m.Bounds()
			if r.Y < MobSpawnY.Min || r.Y >= MobSpawnY.Max {
				t.Errorf("recycled y = %d, expected inside %v", r.Y, MobSpawnY)
			}
			if r.X < 0 || r.X >= FieldWidth-r.W {
				t.Errorf("recycled x = %d, expected inside the field", r.X)
			}
		})
	}
}

func TestMobStaysWhileVisible(t *testing.T) {
	tun := DefaultTuning()
	sp := &spawner{rng: NewRNG(5), tuning: &tun}
	m := sp.newMob(0)
	m.rect.X, m.rect.Y = 100, FieldHeight-1
	m.vx, m.vy = 0, 1

	m.Update(10, Input{})

	if m.Bounds().Y != FieldHeight {
		t.Errorf("mob with top at the bottom edge was recycled, y = %d", m.Bounds().Y)
	}
}

func TestMobRotation(t *testing.T) {
	tun := DefaultTuning()
	sp := &spawner{rng: NewRNG(3), tuning: &tun}
	m := sp.newMob(0)
	m.vx, m.vy = 0, 0
	m.spin = 5
	m.rect = core.RectAround(100, 100, m.orig.W, m.orig.H)
	radius := m.Radius()

	m.Update(50, Input{})
	if m.Angle() != 0 {
		t.Errorf("rotated at exactly the interval, angle = %d", m.Angle())
	}

	m.Update(51, Input{})
	if m.Angle() != 5 {
		t.Errorf("angle = %d, expected 5", m.Angle())
	}

	m.Update(60, Input{})
	if m.Angle() != 5 {
		t.Errorf("rotated before the next interval, angle = %d", m.Angle())
	}

	for now := int64(102); now < 5000; now += 51 {
		m.Update(now, Input{})
		cx, cy := m.Bounds().Center()
		if cx != 100 || cy != 100 {
			t.Fatalf("center drifted to (%d,%d) at angle %d", cx, cy, m.Angle())
		}
		if m.Angle() < 0 || m.Angle() >= 360 {
			t.Fatalf("angle %d not normalized", m.Angle())
		}
		if m.Radius() != radius {
			t.Fatalf("radius changed to %d", m.Radius())
		}
	}
}

func TestMobRotationWrapsNegative(t *testing.T) {
	tun := DefaultTuning()
	sp := &spawner{rng: NewRNG(3), tuning: &tun}
	m := sp.newMob(0)
	m.vx, m.vy = 0, 0
	m.spin = -8

	m.Update(100, Input{})

	if m.Angle() != 352 {
		t.Errorf("angle = %d, expected 352", m.Angle())
	}
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		size Size
		deg  int
		w, h int
	}{
		{Size{10, 20}, 0, 10, 20},
		{Size{10, 20}, 90, 20, 10},
		{Size{10, 20}, 180, 10, 20},
		{Size{10, 10}, 45, 15, 15},
	}

	for _, tc := range tests {
		w, h := rotatedSize(tc.size, tc.deg)
		if w != tc.w || h != tc.h {
			t.Errorf("rotatedSize(%v, %d) = %dx%d, expected %dx%d", tc.size, tc.deg, w, h, tc.w, tc.h)
		}
	}
}

func TestExplosionAnimation(t *testing.T) {
	tun := DefaultTuning()
	frames := tun.ExplosionFrames[ExplosionPlayer]
	e := newExplosion(ExplosionPlayer, 100, 100, 0, &tun)

	if e.Bounds().W != frames[0].W || e.Bounds().H != frames[0].H {
		t.Errorf("first frame size = %dx%d, expected %v", e.Bounds().W, e.Bounds().H, frames[0])
	}

	e.Update(ExplosionFrameMillis, Input{})
	if e.FrameIndex() != 0 {
		t.Errorf("advanced at exactly the interval, frame = %d", e.FrameIndex())
	}

	now := int64(0)
	advances := 0
	for e.Alive() && advances < 100 {
		now += ExplosionFrameMillis + 1
		e.Update(now, Input{})
		advances++

		if !e.Alive() {
			break
		}
		if e.FrameIndex() != advances {
			t.Fatalf("frame = %d, expected %d", e.FrameIndex(), advances)
		}
		r := e.Bounds()
		if cx, cy := r.Center(); cx != 100 || cy != 100 {
			t.Fatalf("frame %d centered at (%d,%d)", e.FrameIndex(), cx, cy)
		}
		if r.W != frames[advances].W || r.H != frames[advances].H {
			t.Fatalf("frame %d size = %dx%d, expected %v", advances, r.W, r.H, frames[advances])
		}
	}

	if advances != len(frames) {
		t.Errorf("explosion died after %d advances, expected %d", advances, len(frames))
	}

	before := e.FrameIndex()
	e.Update(now+1000, Input{})
	if e.FrameIndex() != before {
		t.Error("dead explosion kept animating")
	}
}
