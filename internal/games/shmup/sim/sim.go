package sim

import "fmt"

// Simulation owns every entity of one session and advances them one tick at
// a time. It is not safe for concurrent use; callers step it from a single
// loop and hand the returned Frame to renderers.
type Simulation struct {
	tuning  Tuning
	rng     *RNG
	spawner *spawner

	player     *Player
	mobs       []*Mob
	bullets    []*Bullet
	explosions []*Explosion
	all        []Entity // Insertion order, used for update and draw

	// deathBlast is the most recent player-death explosion, nil until the
	// first life is lost. Game over waits for it to finish.
	deathBlast *Explosion

	score  int
	state  SessionState
	tick   uint64
	now    int64
	sounds []SoundID
	music  []MusicCue
	last   Frame
}

// New creates a session with the given tuning. The RNG seed fully
// determines mob placement and sound choice.
func New(t Tuning, seed int64) (*Simulation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	t.MobShapes = append([]Size(nil), t.MobShapes...)

	s := &Simulation{
		tuning: t,
		rng:    NewRNG(seed),
	}
	s.spawner = &spawner{rng: s.rng, tuning: &s.tuning}

	s.player = newPlayer(&s.tuning)
	s.all = append(s.all, s.player)

	for i := 0; i < t.InitialMobs; i++ {
		s.spawnMob()
	}

	if t.MusicTrack != "" {
		s.music = append(s.music, MusicCue{Track: t.MusicTrack, Loop: true, Volume: t.MusicVolume})
	}

	// Audio is only ever reported by Step.
	s.last = s.snapshot()
	s.last.Music = nil
	return s, nil
}

// MustNew is New for tunings known to be valid, such as DefaultTuning.
func MustNew(t Tuning, seed int64) *Simulation {
	s, err := New(t, seed)
	if err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
	return s
}

// Step advances the session to time now (milliseconds since start) and
// returns the resulting frame. Once the session is over the last frame is
// returned again, without its audio.
func (s *Simulation) Step(now int64, in Input) Frame {
	if s.state == GameOver {
		f := s.last.clone()
		f.Sounds = nil
		f.Music = nil
		return f
	}

	s.tick++
	s.now = now

	if in.Fire && s.player.Alive() {
		s.shoot()
	}

	for _, e := range s.all {
		if e.Alive() {
			e.Update(now, in)
		}
	}
	s.compact()

	s.resolveBulletHits()
	s.compact()

	if !s.player.hidden {
		s.resolvePlayerHits()
		s.compact()
	}

	s.checkGameOver()

	s.last = s.snapshot()
	s.sounds = s.sounds[:0]
	s.music = s.music[:0]
	return s.last.clone()
}

// shoot adds a bullet at the ship's nose.
func (s *Simulation) shoot() {
	s.addBullet(s.player.Shoot())
	s.sounds = append(s.sounds, SoundShoot)
}

// resolveBulletHits pairs each mob with at most one overlapping bullet.
// Pairs are taken in mob order, then bullet order; a consumed bullet or mob
// cannot take part in a second pair.
func (s *Simulation) resolveBulletHits() {
	replacements := 0

	for _, m := range s.mobs {
		if !m.Alive() {
			continue
		}
		for _, b := range s.bullets {
			if !b.Alive() || !b.rect.Intersects(m.rect) {
				continue
			}

			m.Kill()
			b.Kill()
			s.score += s.tuning.ScoreBase - m.radius
			s.sounds = append(s.sounds, explosionSounds[s.rng.Intn(len(explosionSounds))])

			cx, cy := m.rect.Center()
			s.addExplosion(ExplosionLarge, cx, cy)
			replacements++
			break
		}
	}

	for i := 0; i < replacements; i++ {
		s.spawnMob()
	}
}

// resolvePlayerHits applies ramming damage from every mob overlapping the
// ship. Losing the shield costs a life and hides the ship, which ends the pass.
func (s *Simulation) resolvePlayerHits() {
	p := s.player
	replacements := 0

	for _, m := range s.mobs {
		if p.hidden || !p.Alive() {
			break
		}
		if !m.Alive() || !p.Circle().Overlaps(m.Circle()) {
			continue
		}

		m.Kill()
		cx, cy := m.rect.Center()
		s.addExplosion(ExplosionSmall, cx, cy)
		replacements++

		p.shield -= m.radius
		if p.shield <= 0 {
			s.sounds = append(s.sounds, SoundPlayerDie)
			px, py := p.rect.Center()
			s.deathBlast = s.addExplosion(ExplosionPlayer, px, py)
			p.hide(s.now)
			if p.lives > 0 {
				p.lives--
			}
			p.shield = s.tuning.MaxShield
		}
	}

	for i := 0; i < replacements; i++ {
		s.spawnMob()
	}
}

// checkGameOver ends the session once no lives remain and the death blast,
// if any, has finished.
func (s *Simulation) checkGameOver() {
	if s.player.lives > 0 {
		return
	}
	if s.deathBlast != nil && s.deathBlast.Alive() {
		return
	}
	s.state = GameOver
	s.player.Kill()
	s.compact()
}

func (s *Simulation) spawnMob() {
	m := s.spawner.newMob(s.now)
	s.mobs = append(s.mobs, m)
	s.all = append(s.all, m)
}

func (s *Simulation) addBullet(b *Bullet) {
	s.bullets = append(s.bullets, b)
	s.all = append(s.all, b)
}

func (s *Simulation) addExplosion(class ExplosionClass, cx, cy int) *Explosion {
	e := newExplosion(class, cx, cy, s.now, &s.tuning)
	s.explosions = append(s.explosions, e)
	s.all = append(s.all, e)
	return e
}

// compact drops dead entities from every collection.
func (s *Simulation) compact() {
	s.mobs = alive(s.mobs)
	s.bullets = alive(s.bullets)
	s.explosions = alive(s.explosions)
	s.all = alive(s.all)
}

// alive filters out dead entities in place.
func alive[E Entity](list []E) []E {
	kept := list[:0]
	for _, e := range list {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	// Release references held past the new length.
	var zero E
	for i := len(kept); i < len(list); i++ {
		list[i] = zero
	}
	return kept
}

// snapshot copies the current state into a Frame.
func (s *Simulation) snapshot() Frame {
	draws := make([]DrawCommand, 0, len(s.all))
	for _, e := range s.all {
		draws = append(draws, DrawCommand{Sprite: e.Sprite(), Dest: e.Bounds()})
	}

	f := Frame{
		Tick:  s.tick,
		Now:   s.now,
		State: s.state,
		Draws: draws,
		HUD: HUD{
			Score:  s.score,
			Shield: max(s.player.shield, 0),
			Lives:  s.player.lives,
		},
	}
	if len(s.sounds) > 0 {
		f.Sounds = append([]SoundID(nil), s.sounds...)
	}
	if len(s.music) > 0 {
		f.Music = append([]MusicCue(nil), s.music...)
	}
	return f
}

// Frame returns the most recent frame without advancing the session.
func (s *Simulation) Frame() Frame {
	return s.last.clone()
}

// State returns the session state.
func (s *Simulation) State() SessionState {
	return s.state
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Player returns the ship for inspection.
func (s *Simulation) Player() *Player {
	return s.player
}

// MobCount returns the number of live mobs.
func (s *Simulation) MobCount() int {
	return len(s.mobs)
}

// Tuning returns a copy of the session parameters.
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}

// DeathAnimationPending reports whether a player-death explosion is still playing.
func (s *Simulation) DeathAnimationPending() bool {
	return s.deathBlast != nil && s.deathBlast.Alive()
}

// RNGState returns the RNG state for determinism checks.
func (s *Simulation) RNGState() uint64 {
	return s.rng.State()
}
