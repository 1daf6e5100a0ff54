package physics

import "github.com/san-kum/circlesim/internal/vector"

// Bounds is an axis-aligned rectangle, inclusive on both ends.
type Bounds struct {
	Min vector.Vec2 `json:"min" yaml:"min"`
	Max vector.Vec2 `json:"max" yaml:"max"`
}

// BoundsFor returns the region a circle's center may occupy while the circle
// stays fully inside a width×height field anchored at the origin.
func BoundsFor(width, height, radius float64) Bounds {
	return Bounds{
		Min: vector.New(radius, radius),
		Max: vector.New(width-radius, height-radius),
	}
}

func (b Bounds) Contains(p vector.Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp moves pos back inside b one axis at a time and reports which axes
// were clamped. Min is checked before Max, so an inverted region resolves to
// Max.
func Clamp(pos *vector.Vec2, b Bounds) (clampedX, clampedY bool) {
	if pos.X < b.Min.X {
		pos.X = b.Min.X
		clampedX = true
	}
	if pos.Y < b.Min.Y {
		pos.Y = b.Min.Y
		clampedY = true
	}
	if pos.X > b.Max.X {
		pos.X = b.Max.X
		clampedX = true
	}
	if pos.Y > b.Max.Y {
		pos.Y = b.Max.Y
		clampedY = true
	}
	return clampedX, clampedY
}
