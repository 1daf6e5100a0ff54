package vector

import (
	"fmt"
	"math"
	"strconv"
)

// Vec2 is a point or free vector in 2D space. The zero value is the origin.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Zero is the origin.
var Zero = Vec2{}

func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Div divides both components by k. A divisor of exactly zero fails; tiny
// non-zero divisors are allowed through.
func (v Vec2) Div(k float64) (Vec2, error) {
	if k == 0 {
		return Vec2{}, ErrDivisionByZero
	}
	return Vec2{v.X / k, v.Y / k}, nil
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean norm.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing along v.
func (v Vec2) Normalize() (Vec2, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}, ErrZeroVector
	}
	return Vec2{v.X / mag, v.Y / mag}, nil
}

// NormalizeInPlace scales v to unit length and returns v for chaining.
// On error v is left unchanged.
func (v *Vec2) NormalizeInPlace() (*Vec2, error) {
	n, err := v.Normalize()
	if err != nil {
		return v, err
	}
	*v = n
	return v, nil
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// Angle returns atan2(y, x) in (-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Equal reports exact component-wise equality.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// IsValid reports whether neither component is NaN or infinite.
func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", strconv.FormatFloat(v.X, 'g', -1, 64), strconv.FormatFloat(v.Y, 'g', -1, 64))
}

// Package-level forms for callers that prefer free functions.

func Add(a, b Vec2) Vec2                  { return a.Add(b) }
func Sub(a, b Vec2) Vec2                  { return a.Sub(b) }
func Scale(a Vec2, k float64) Vec2        { return a.Scale(k) }
func Div(a Vec2, k float64) (Vec2, error) { return a.Div(k) }
func Dot(a, b Vec2) float64               { return a.Dot(b) }
func Magnitude(a Vec2) float64            { return a.Magnitude() }
func Normalize(a Vec2) (Vec2, error)      { return a.Normalize() }
func Distance(a, b Vec2) float64          { return a.Distance(b) }
func Angle(a Vec2) float64                { return a.Angle() }
