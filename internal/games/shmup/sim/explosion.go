package sim

import "github.com/vovakirdan/tui-shmup/internal/core"

// Explosion is a display-only animation that removes itself after its last frame.
type Explosion struct {
	body
	class      ExplosionClass
	frames     []Size
	frame      int
	interval   int64
	lastUpdate int64
}

func newExplosion(class ExplosionClass, cx, cy int, now int64, t *Tuning) *Explosion {
	frames := t.ExplosionFrames[class]
	e := &Explosion{
		class:      class,
		frames:     frames,
		interval:   t.ExplosionFrameMillis,
		lastUpdate: now,
	}
	e.rect = core.RectAround(cx, cy, frames[0].W, frames[0].H)
	return e
}

// Update advances at most one frame per call, keeping the animation centered
// on the previous frame's center.
func (e *Explosion) Update(now int64, _ Input) {
	if e.dead {
		return
	}
	if now-e.lastUpdate <= e.interval {
		return
	}

	e.lastUpdate = now
	e.frame++
	if e.frame >= len(e.frames) {
		e.Kill()
		return
	}

	next := e.frames[e.frame]
	e.rect = e.rect.Resize(next.W, next.H)
}

// Class returns the explosion size class.
func (e *Explosion) Class() ExplosionClass { return e.class }

// FrameIndex returns the current animation frame.
func (e *Explosion) FrameIndex() int { return e.frame }

// Sprite implements Entity.
func (e *Explosion) Sprite() Sprite {
	return Sprite{Kind: KindExplosion, Variant: int(e.class), Frame: e.frame}
}
