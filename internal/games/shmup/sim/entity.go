package sim

import "github.com/vovakirdan/tui-shmup/internal/core"

// Kind identifies what an entity is, for renderers.
type Kind int

const (
	KindPlayer Kind = iota
	KindMob
	KindBullet
	KindExplosion
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMob:
		return "mob"
	case KindBullet:
		return "bullet"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Sprite tells the renderer which image an entity shows.
type Sprite struct {
	Kind    Kind
	Variant int // Mob shape index or explosion class
	Frame   int // Explosion frame index
	Angle   int // Mob rotation in degrees, [0, 360)
}

// Input is the per-tick input snapshot the core consumes.
type Input struct {
	Left  bool // Steer left while held
	Right bool // Steer right while held; wins over Left
	Fire  bool // Fire key pressed this tick
}

// Entity is the capability set shared by every simulated object.
// Update and Kill on a dead entity are no-ops.
type Entity interface {
	Update(now int64, in Input)
	Alive() bool
	Kill()
	Bounds() core.Rect
	Sprite() Sprite
}

// body holds the state common to all entities.
type body struct {
	rect   core.Rect
	radius int
	dead   bool
}

// Alive reports whether the entity still takes part in the simulation.
func (b *body) Alive() bool {
	return !b.dead
}

// Kill marks the entity dead. Calling it again has no effect.
func (b *body) Kill() {
	b.dead = true
}

// Bounds returns the axis-aligned bounding rectangle.
func (b *body) Bounds() core.Rect {
	return b.rect
}

// Radius returns the collision radius.
func (b *body) Radius() int {
	return b.radius
}

// Circle returns the collision disc centered on the bounding rectangle.
func (b *body) Circle() core.Circle {
	cx, cy := b.rect.Center()
	return core.Circle{X: cx, Y: cy, R: b.radius}
}
