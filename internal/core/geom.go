// Package core holds the platform-neutral types shared by the simulation,
// the game adapter and the terminal front end: playfield geometry, the cell
// screen, input actions, and the per-tick result passed to the platform.
// It imports nothing outside the standard library.
package core

// Rect is an integer axis-aligned rectangle in playfield units, anchored at
// its top-left corner. Y grows downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a w x h rectangle whose center is (cx, cy).
// Center() of the result returns (cx, cy) exactly.
func RectAround(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the rectangles share any area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle, rounding toward the
// top-left for odd sizes.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Resize returns a w x h rectangle sharing this rectangle's center.
func (r Rect) Resize(w, h int) Rect {
	cx, cy := r.Center()
	return RectAround(cx, cy, w, h)
}

// Circle is a collision disc.
type Circle struct {
	X, Y int // Center
	R    int // Radius
}

// Overlaps reports whether the two discs overlap.
// Touching discs (distance == r1+r2) do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	sum := c.R + other.R
	return dx*dx+dy*dy < sum*sum
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
