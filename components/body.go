// @focus: #entities { body }
package components

import "github.com/lixenwraith/space-snake/vmath"

// Body is the square bounding box shared by every entity, in world units
// X, Y is the top-left corner
type Body struct {
	X, Y int
	Size int
}

func (b Body) Right() int  { return b.X + b.Size }
func (b Body) Bottom() int { return b.Y + b.Size }

// Center returns the midpoint of the box
func (b Body) Center() (float64, float64) {
	half := float64(b.Size / 2)
	return float64(b.X) + half, float64(b.Y) + half
}

// Radius is the collision circle radius, half the size rounded down
func (b Body) Radius() float64 {
	return float64(b.Size / 2)
}

// SetCenter moves the box so its midpoint lands on (cx, cy)
func (b *Body) SetCenter(cx, cy int) {
	b.X = cx - b.Size/2
	b.Y = cy - b.Size/2
}

// Overlaps tests box intersection
func (b Body) Overlaps(o Body) bool {
	return vmath.RectOverlap(b.X, b.Y, b.Size, b.Size, o.X, o.Y, o.Size, o.Size)
}

// CircleOverlaps tests intersection of the inscribed collision circles
func (b Body) CircleOverlaps(o Body) bool {
	bx, by := b.Center()
	ox, oy := o.Center()
	return vmath.CircleOverlap(bx, by, b.Radius(), ox, oy, o.Radius())
}

// OffScreenLeft reports whether the box has fully left the playfield on the left
func (b Body) OffScreenLeft() bool {
	return b.Right() < 0
}
