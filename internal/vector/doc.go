// Package vector provides a 2D vector value type for the circle demos.
//
// [Vec2] is a plain value: it is copied freely and every operation except
// [Vec2.NormalizeInPlace] returns a new vector. Two operations can fail:
//
//   - [Vec2.Div] returns [ErrDivisionByZero] when the divisor is exactly zero
//   - [Vec2.Normalize] returns [ErrZeroVector] when the magnitude is exactly zero
//
// # Equality
//
// [Vec2.Equal] compares components exactly, without tolerance, so results
// that differ only by floating-point drift are not equal. Use
// [Vec2.ApproxEqual] when a tolerance is wanted.
//
// # Example
//
//	a := vector.New(3, 4)
//	b := vector.New(0, 0)
//	d := a.Distance(b) // 5
//	u, err := a.Normalize()
package vector
