package physics

import "github.com/san-kum/circlesim/internal/vector"

const DefaultElasticity = 0.7

// Body is a position with a velocity.
type Body struct {
	Pos vector.Vec2 `json:"pos" yaml:"pos"`
	Vel vector.Vec2 `json:"vel" yaml:"vel"`
}

func NewBody(pos, vel vector.Vec2) *Body {
	return &Body{Pos: pos, Vel: vel}
}

// Update advances pos and vel by dt under constant acceleration acc:
//
//	vel += acc*dt
//	pos += vel*dt + 0.5*acc*dt²
//
// The position term uses the updated velocity.
func Update(pos, vel *vector.Vec2, dt float64, acc vector.Vec2) {
	*vel = vel.Add(acc.Scale(dt))
	*pos = pos.Add(vel.Scale(dt)).Add(acc.Scale(0.5 * dt * dt))
}

// Bounce negates the vertical velocity and scales it by elasticity. The
// horizontal component is left alone.
func Bounce(vel *vector.Vec2, elasticity float64) {
	vel.Y = -vel.Y * elasticity
}

func (b *Body) Update(dt float64, acc vector.Vec2) {
	Update(&b.Pos, &b.Vel, dt, acc)
}

func (b *Body) Bounce(elasticity float64) {
	Bounce(&b.Vel, elasticity)
}
