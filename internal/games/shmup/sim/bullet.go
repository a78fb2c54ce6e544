package sim

import "github.com/vovakirdan/tui-shmup/internal/core"

// Bullet is an upward projectile.
type Bullet struct {
	body
	velocityY int
}

// newBullet places a bullet with its bottom-center at (cx, bottom).
func newBullet(cx, bottom int, t *Tuning) *Bullet {
	b := &Bullet{velocityY: t.BulletVY}
	b.rect = core.NewRect(cx-t.BulletW/2, bottom-t.BulletH, t.BulletW, t.BulletH)
	return b
}

// Update moves the bullet and kills it once its bottom edge reaches the top
// of the playfield.
func (b *Bullet) Update(_ int64, _ Input) {
	if b.dead {
		return
	}
	b.rect.Y += b.velocityY
	if b.rect.Bottom() <= 0 {
		b.Kill()
	}
}

// Sprite implements Entity.
func (b *Bullet) Sprite() Sprite {
	return Sprite{Kind: KindBullet}
}
