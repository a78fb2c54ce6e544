package sim

import (
	"testing"
)

func TestNewSession(t *testing.T) {
	s, err := New(DefaultTuning(), 42)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if s.State() != Running {
		t.Errorf("State() = %v, expected running", s.State())
	}
	if s.MobCount() != InitialMobs {
		t.Errorf("MobCount() = %d, expected %d", s.MobCount(), InitialMobs)
	}

	f := s.Frame()
	if f.HUD != (HUD{Score: 0, Shield: MaxShield, Lives: StartLives}) {
		t.Errorf("initial HUD = %+v", f.HUD)
	}
	if countKind(f, KindPlayer) != 1 || countKind(f, KindMob) != InitialMobs {
		t.Errorf("initial frame draws %d players and %d mobs", countKind(f, KindPlayer), countKind(f, KindMob))
	}
	if f.Music != nil || f.Sounds != nil {
		t.Error("initial frame should carry no audio")
	}
}

func TestMusicCueOnFirstStepOnly(t *testing.T) {
	s := MustNew(DefaultTuning(), 42)

	f := s.Step(33, Input{})
	if len(f.Music) != 1 {
		t.Fatalf("first frame music = %v, expected one cue", f.Music)
	}
	expected := MusicCue{Track: MusicTrack, Loop: true, Volume: MusicVolume}
	if f.Music[0] != expected {
		t.Errorf("music cue = %+v, expected %+v", f.Music[0], expected)
	}

	f = s.Step(66, Input{})
	if f.Music != nil {
		t.Errorf("second frame music = %v, expected none", f.Music)
	}
}

func TestFireSpawnsBulletAtNose(t *testing.T) {
	s := newQuietSim(t)
	top := s.Player().Bounds().Y

	f := s.Step(16, Input{Fire: true})

	if !hasSound(f, SoundShoot) {
		t.Error("expected shoot sound")
	}
	if countKind(f, KindBullet) != 1 || len(s.bullets) != 1 {
		t.Fatalf("expected one bullet, frame has %d", countKind(f, KindBullet))
	}

	b := s.bullets[0].Bounds()
	if cx, _ := b.Center(); cx != FieldWidth/2 {
		t.Errorf("bullet center x = %d, expected %d", cx, FieldWidth/2)
	}
	// Spawned bullets move in the tick that fired them.
	if b.Bottom() != top+BulletVelocityY {
		t.Errorf("bullet bottom = %d, expected %d", b.Bottom(), top+BulletVelocityY)
	}
}

func TestFireEveryTick(t *testing.T) {
	s := newQuietSim(t)

	for i := 1; i <= 5; i++ {
		s.Step(int64(i*16), Input{Fire: true})
	}

	if len(s.bullets) != 5 {
		t.Errorf("expected 5 bullets with no fire-rate limit, got %d", len(s.bullets))
	}
}

func TestPlayerStaysInsideField(t *testing.T) {
	s := newQuietSim(t)
	rng := NewRNG(77)

	for i := 1; i <= 2000; i++ {
		in := Input{Left: rng.Intn(2) == 0, Right: rng.Intn(3) == 0}
		s.Step(int64(i*33), in)

		r := s.Player().Bounds()
		if r.X < 0 || r.Right() > FieldWidth {
			t.Fatalf("tick %d: player at x=[%d,%d) outside the field", i, r.X, r.Right())
		}
	}
}

func TestMobPopulationIsConstant(t *testing.T) {
	s := MustNew(DefaultTuning(), 2024)
	rng := NewRNG(8)

	for i := 1; i <= 3000; i++ {
		in := Input{
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(2) == 0,
			Fire:  i%4 == 0,
		}
		f := s.Step(int64(i*33), in)

		if s.MobCount() != InitialMobs {
			t.Fatalf("tick %d: MobCount() = %d, expected %d", i, s.MobCount(), InitialMobs)
		}
		if n := countKind(f, KindMob); n != InitialMobs {
			t.Fatalf("tick %d: frame draws %d mobs, expected %d", i, n, InitialMobs)
		}
	}
}

func TestBulletKillsMob(t *testing.T) {
	s := newQuietSim(t)
	m := placeMob(s, 120, 120, 40, 17)
	s.addBullet(newBullet(120, 150, &s.tuning))

	f := s.Step(16, Input{})

	if m.Alive() {
		t.Fatal("mob should be destroyed")
	}
	if len(s.bullets) != 0 {
		t.Errorf("bullet should be consumed, %d left", len(s.bullets))
	}
	if s.Score() != ScoreBase-17 || f.HUD.Score != ScoreBase-17 {
		t.Errorf("score = %d, expected %d", s.Score(), ScoreBase-17)
	}
	if s.MobCount() != 1 {
		t.Errorf("MobCount() = %d, expected a replacement", s.MobCount())
	}
	if len(f.Sounds) != 1 || (f.Sounds[0] != SoundExplosion1 && f.Sounds[0] != SoundExplosion2) {
		t.Errorf("sounds = %v, expected one explosion sound", f.Sounds)
	}

	if len(s.explosions) != 1 {
		t.Fatalf("expected one explosion, got %d", len(s.explosions))
	}
	e := s.explosions[0]
	if e.Class() != ExplosionLarge {
		t.Errorf("explosion class = %v, expected large", e.Class())
	}
	if cx, cy := e.Bounds().Center(); cx != 120 || cy != 120 {
		t.Errorf("explosion centered at (%d,%d), expected (120,120)", cx, cy)
	}
}

func TestBulletConsumedByOneMob(t *testing.T) {
	s := newQuietSim(t)
	first := placeMob(s, 120, 120, 40, 17)
	second := placeMob(s, 125, 120, 40, 17)
	s.addBullet(newBullet(122, 150, &s.tuning))

	s.Step(16, Input{})

	if first.Alive() {
		t.Error("first mob in order should take the bullet")
	}
	if !second.Alive() {
		t.Error("second mob should survive, the bullet was already consumed")
	}
	if s.Score() != ScoreBase-17 {
		t.Errorf("score = %d, expected a single kill", s.Score())
	}
	if s.MobCount() != 2 {
		t.Errorf("MobCount() = %d, expected 2", s.MobCount())
	}
}

func TestMobConsumesOneBullet(t *testing.T) {
	s := newQuietSim(t)
	placeMob(s, 120, 120, 40, 17)
	s.addBullet(newBullet(115, 150, &s.tuning))
	s.addBullet(newBullet(125, 150, &s.tuning))

	s.Step(16, Input{})

	if len(s.bullets) != 1 {
		t.Errorf("expected one surviving bullet, got %d", len(s.bullets))
	}
	if s.Score() != ScoreBase-17 {
		t.Errorf("score = %d, expected a single kill", s.Score())
	}
}

func TestMobRamDamagesShield(t *testing.T) {
	s := newQuietSim(t)
	px, py := s.Player().Bounds().Center()
	m := placeMob(s, px, py, 30, 15)

	f := s.Step(16, Input{})

	if m.Alive() {
		t.Error("ramming mob should be destroyed")
	}
	if f.HUD.Shield != MaxShield-15 {
		t.Errorf("shield = %d, expected %d", f.HUD.Shield, MaxShield-15)
	}
	if f.HUD.Lives != StartLives || s.Player().Hidden() {
		t.Error("shield damage alone should not cost a life")
	}
	if f.HUD.Score != 0 {
		t.Errorf("ramming should not score, got %d", f.HUD.Score)
	}
	if hasSound(f, SoundPlayerDie) {
		t.Error("unexpected player_die sound")
	}
	if s.MobCount() != 1 {
		t.Errorf("MobCount() = %d, expected a replacement", s.MobCount())
	}
	if len(s.explosions) != 1 || s.explosions[0].Class() != ExplosionSmall {
		t.Fatal("expected one small explosion")
	}
	if cx, cy := s.explosions[0].Bounds().Center(); cx != px || cy != py {
		t.Errorf("explosion centered at (%d,%d), expected (%d,%d)", cx, cy, px, py)
	}
}

func TestMobJustOutsideRadiusMisses(t *testing.T) {
	s := newQuietSim(t)
	px, py := s.Player().Bounds().Center()
	// Distance equals the radius sum: touching is not a hit.
	m := placeMob(s, px+PlayerRadius+10, py, 24, 10)

	s.Step(16, Input{})

	if !m.Alive() {
		t.Error("touching circles should not collide")
	}
	if s.Player().Shield() != MaxShield {
		t.Errorf("shield = %d, expected %d", s.Player().Shield(), MaxShield)
	}
}

func TestLifeLossRestoresShieldAndHides(t *testing.T) {
	s := newQuietSim(t)
	s.player.shield = 10
	px, py := s.Player().Bounds().Center()
	placeMob(s, px, py, 30, 15)

	f := s.Step(17, Input{})

	if f.HUD.Lives != StartLives-1 {
		t.Errorf("lives = %d, expected %d", f.HUD.Lives, StartLives-1)
	}
	if f.HUD.Shield != MaxShield {
		t.Errorf("shield = %d, expected a full reset to %d", f.HUD.Shield, MaxShield)
	}
	if !s.Player().Hidden() {
		t.Fatal("player should be hidden after losing a life")
	}
	if !hasSound(f, SoundPlayerDie) {
		t.Error("expected player_die sound")
	}
	if !s.DeathAnimationPending() {
		t.Error("expected a player death explosion")
	}

	// A mob parked on the spawn point cannot hurt the hidden ship.
	m := placeMob(s, px, py, 30, 15)
	s.Step(517, Input{})
	if !m.Alive() || s.Player().Shield() != MaxShield {
		t.Error("hidden player should be invulnerable")
	}

	// Past the timeout the ship reappears on the spawn point and is hit.
	s.Step(1018, Input{})
	if s.Player().Hidden() {
		t.Fatal("player should be revealed")
	}
	if m.Alive() || s.Player().Shield() != MaxShield-15 {
		t.Errorf("revealed player should collide again, shield = %d", s.Player().Shield())
	}
}

func TestLastLifeWaitsForDeathExplosion(t *testing.T) {
	s := newQuietSim(t)
	s.player.lives = 1
	s.player.shield = 10
	px, py := s.Player().Bounds().Center()
	placeMob(s, px, py, 30, 15)

	now := int64(17)
	f := s.Step(now, Input{})

	if f.HUD.Lives != 0 || f.HUD.Shield != MaxShield {
		t.Errorf("HUD = %+v, expected 0 lives and a full shield", f.HUD)
	}
	if f.State != Running {
		t.Fatal("session must keep running while the death explosion plays")
	}

	frames := len(s.tuning.ExplosionFrames[ExplosionPlayer])
	blast := s.deathBlast
	pending := s.DeathAnimationPending()

	for i := 0; i < 200 && f.State == Running; i++ {
		if !pending {
			t.Fatal("death explosion finished without ending the session")
		}
		now += 17
		f = s.Step(now, Input{})
		pending = s.DeathAnimationPending()

		if f.State == Running && !pending {
			t.Fatal("death explosion finished but session is still running")
		}
	}

	if f.State != GameOver {
		t.Fatal("session never reached game over")
	}
	if blast.Alive() || blast.FrameIndex() < frames {
		t.Errorf("game over before the explosion played all %d frames (at %d)", frames, blast.FrameIndex())
	}
	if s.Player().Alive() {
		t.Error("player should be killed at game over")
	}
	if countKind(f, KindPlayer) != 0 {
		t.Error("game over frame should not draw the player")
	}
}

func TestGameOverWithoutDeathExplosion(t *testing.T) {
	s := newQuietSim(t)
	s.player.lives = 0

	f := s.Step(16, Input{})
	if f.State != GameOver || s.State() != GameOver {
		t.Fatalf("State = %v, expected gameover", f.State)
	}

	again := s.Step(32, Input{Fire: true})
	if again.Tick != f.Tick {
		t.Errorf("tick advanced after game over: %d -> %d", f.Tick, again.Tick)
	}
	if again.Sounds != nil || len(s.bullets) != 0 {
		t.Error("input after game over should be ignored")
	}
	if again.Hash() != f.Hash() {
		t.Error("frame after game over should repeat the last one")
	}
}

func TestBulletWinsOverRam(t *testing.T) {
	s := newQuietSim(t)
	px, py := s.Player().Bounds().Center()
	m := placeMob(s, px, py, 30, 12)
	// Overlaps the mob's box after moving up one tick.
	s.addBullet(newBullet(px, py+19, &s.tuning))

	f := s.Step(16, Input{})

	if m.Alive() {
		t.Fatal("mob should be destroyed")
	}
	if f.HUD.Shield != MaxShield {
		t.Errorf("shield = %d, a mob shot down this tick must not also ram", f.HUD.Shield)
	}
	if f.HUD.Score != ScoreBase-12 {
		t.Errorf("score = %d, expected %d", f.HUD.Score, ScoreBase-12)
	}
	if len(s.explosions) != 1 || s.explosions[0].Class() != ExplosionLarge {
		t.Error("expected exactly one large explosion")
	}
}

func TestHUDShieldNeverNegative(t *testing.T) {
	s := newQuietSim(t)
	s.player.shield = -5

	if f := s.snapshot(); f.HUD.Shield != 0 {
		t.Errorf("HUD shield = %d, expected 0", f.HUD.Shield)
	}
}

func TestFrameIsIndependentCopy(t *testing.T) {
	s := MustNew(DefaultTuning(), 9)
	f := s.Step(16, Input{})
	x := f.Draws[0].Dest.X

	f.Draws[0].Dest.X = -999

	if got := s.Frame().Draws[0].Dest.X; got != x {
		t.Errorf("mutating a returned frame changed the session: x = %d", got)
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) ([]uint64, uint64) {
		s := MustNew(DefaultTuning(), seed)
		hashes := make([]uint64, 0, 1000)
		for i := 1; i <= 1000; i++ {
			in := Input{
				Left:  (i/40)%3 == 0,
				Right: (i/40)%3 == 1,
				Fire:  i%3 == 0,
			}
			f := s.Step(int64(i*33), in)
			hashes = append(hashes, f.Hash())
		}
		return hashes, s.RNGState()
	}

	a, stateA := run(12345)
	b, stateB := run(12345)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d differs: %d != %d", i+1, a[i], b[i])
		}
	}
	if stateA != stateB {
		t.Errorf("RNG state differs: %d != %d", stateA, stateB)
	}

	c, _ := run(54321)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sessions")
	}
}

func TestMustNewPanicsOnInvalidTuning(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()

	tun := DefaultTuning()
	tun.FieldW = 0
	MustNew(tun, 1)
}
