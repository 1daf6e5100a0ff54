package demo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/vector"
)

const (
	DefaultWidth     = 800.0
	DefaultHeight    = 600.0
	DefaultRadius    = 30.0
	DefaultMoveSpeed = 100.0
	DefaultGravity   = 500.0
)

var ErrUnknownParam = errors.New("demo: unknown parameter")

type Params struct {
	Width          float64
	Height         float64
	PlayerRadius   float64
	ObstacleRadius float64
	PlayerStart    vector.Vec2
	PlayerVelocity vector.Vec2
	ObstacleStart  vector.Vec2
	MoveSpeed      float64
	Gravity        vector.Vec2
	Elasticity     float64
}

func DefaultParams() Params {
	return Params{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		PlayerRadius:   DefaultRadius,
		ObstacleRadius: DefaultRadius,
		PlayerStart:    vector.New(100, 100),
		ObstacleStart:  vector.New(300, 300),
		MoveSpeed:      DefaultMoveSpeed,
		Gravity:        vector.New(0, DefaultGravity),
		Elasticity:     physics.DefaultElasticity,
	}
}

func (p Params) Bounds() physics.Bounds {
	return physics.BoundsFor(p.Width, p.Height, p.PlayerRadius)
}

func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("demo: field must have positive size, got %gx%g", p.Width, p.Height)
	}
	if p.PlayerRadius < 0 || p.ObstacleRadius < 0 {
		return fmt.Errorf("demo: radii must not be negative")
	}
	if p.MoveSpeed < 0 {
		return fmt.Errorf("demo: move speed must not be negative, got %g", p.MoveSpeed)
	}
	if p.Elasticity < 0 || p.Elasticity > 1 {
		return fmt.Errorf("demo: elasticity must be within [0, 1], got %g", p.Elasticity)
	}
	if !p.PlayerStart.IsValid() || !p.ObstacleStart.IsValid() || !p.Gravity.IsValid() || !p.PlayerVelocity.IsValid() {
		return fmt.Errorf("demo: positions and vectors must be finite")
	}
	return nil
}

// fields exposes the tunable scalars by name.
func (p *Params) fields() map[string]*float64 {
	return map[string]*float64{
		"move_speed":      &p.MoveSpeed,
		"gravity_x":       &p.Gravity.X,
		"gravity_y":       &p.Gravity.Y,
		"elasticity":      &p.Elasticity,
		"player_radius":   &p.PlayerRadius,
		"obstacle_radius": &p.ObstacleRadius,
	}
}

func (p *Params) GetParams() map[string]float64 {
	out := make(map[string]float64)
	for k, v := range p.fields() {
		out[k] = *v
	}
	return out
}

func (p *Params) SetParam(name string, value float64) error {
	f, ok := p.fields()[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	*f = value
	return nil
}

func ParamNames() []string {
	var p Params
	names := make([]string, 0)
	for k := range p.fields() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
