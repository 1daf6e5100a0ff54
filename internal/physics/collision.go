package physics

import "github.com/san-kum/circlesim/internal/vector"

// Circle is a center and a radius.
type Circle struct {
	Center vector.Vec2 `json:"center" yaml:"center"`
	Radius float64     `json:"radius" yaml:"radius"`
}

func NewCircle(center vector.Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// CheckCollision reports whether two circles overlap. Circles that exactly
// touch are not colliding.
func CheckCollision(posA, posB vector.Vec2, radiusA, radiusB float64) bool {
	return posA.Distance(posB) < radiusA+radiusB
}

// Overlaps is CheckCollision for two Circle values.
func (c Circle) Overlaps(o Circle) bool {
	return CheckCollision(c.Center, o.Center, c.Radius, o.Radius)
}

// Penetration returns how far the circles overlap, or 0 when they do not.
func (c Circle) Penetration(o Circle) float64 {
	d := c.Radius + o.Radius - c.Center.Distance(o.Center)
	if d <= 0 {
		return 0
	}
	return d
}
