// Package physics provides the circle demos' collision and motion rules.
//
//   - [CheckCollision]: strict circle overlap test
//   - [Update]: constant-acceleration step for a position/velocity pair
//   - [Bounce]: damped inversion of the vertical velocity component
//   - [Clamp]: per-axis confinement of a position to a [Bounds] rectangle
//
// [Update] adds the half-acceleration term on top of the already updated
// velocity, so a body starting at rest under acceleration a covers 1.5·a·dt²
// in its first step rather than 0.5·a·dt². [Bounce] only touches the vertical
// component whatever the contact direction. [Clamp] never changes velocity.
//
// # Example
//
//	b := physics.NewBody(vector.New(0, 0), vector.Zero)
//	b.Update(1.0/60, vector.New(0, 500))
//	if physics.CheckCollision(b.Pos, other, 30, 30) {
//	    b.Bounce(physics.DefaultElasticity)
//	}
package physics
