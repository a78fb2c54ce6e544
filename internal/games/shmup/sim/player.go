package sim

import "github.com/vovakirdan/tui-shmup/internal/core"

// Player is the ship steered by the user.
type Player struct {
	body
	tuning *Tuning

	speedX      int
	shield      int
	lives       int
	hidden      bool
	hiddenSince int64
}

func newPlayer(t *Tuning) *Player {
	p := &Player{
		tuning: t,
		shield: t.MaxShield,
		lives:  t.StartLives,
	}
	p.radius = t.PlayerRadius
	p.reveal()
	return p
}

// Update reveals the ship once the invulnerability window has passed, then
// steers and clamps it inside the playfield.
func (p *Player) Update(now int64, in Input) {
	if p.dead {
		return
	}

	if p.hidden && now-p.hiddenSince > p.tuning.HiddenMillis {
		p.reveal()
	}

	p.speedX = 0
	if in.Left {
		p.speedX = -p.tuning.PlayerSpeed
	}
	if in.Right {
		p.speedX = p.tuning.PlayerSpeed
	}

	p.rect.X += p.speedX
	if p.rect.X < 0 {
		p.rect.X = 0
	}
	if p.rect.Right() > p.tuning.FieldW {
		p.rect.X = p.tuning.FieldW - p.rect.W
	}
}

// Shoot returns a bullet leaving the ship's top-center point.
// There is no fire-rate limit.
func (p *Player) Shoot() *Bullet {
	cx, _ := p.rect.Center()
	return newBullet(cx, p.rect.Y, p.tuning)
}

// hide parks the ship below the playfield and starts the invulnerability timer.
func (p *Player) hide(now int64) {
	p.hidden = true
	p.hiddenSince = now
	p.rect = core.RectAround(p.tuning.FieldW/2, p.tuning.FieldH+p.tuning.HiddenOffset, p.tuning.PlayerW, p.tuning.PlayerH)
}

// reveal puts the ship back on its spawn point.
func (p *Player) reveal() {
	p.hidden = false
	x := p.tuning.FieldW/2 - p.tuning.PlayerW/2
	y := p.tuning.FieldH - p.tuning.PlayerBottomMargin - p.tuning.PlayerH
	p.rect = core.NewRect(x, y, p.tuning.PlayerW, p.tuning.PlayerH)
}

// Sprite implements Entity.
func (p *Player) Sprite() Sprite {
	return Sprite{Kind: KindPlayer}
}

// Shield returns the raw shield value. It is transiently <= 0 only inside a step.
func (p *Player) Shield() int { return p.shield }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// Hidden reports whether the ship is in its post-death invulnerability window.
func (p *Player) Hidden() bool { return p.hidden }

// SpeedX returns the horizontal speed applied on the last update.
func (p *Player) SpeedX() int { return p.speedX }
