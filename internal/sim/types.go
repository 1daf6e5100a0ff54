package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/circlesim/internal/vector"
)

var ErrInvalidConfig = errors.New("sim: invalid config")

// Intent is the directional input held during one frame. Opposite
// directions cancel; diagonals are not normalized.
type Intent struct {
	Left  bool `json:"left,omitempty" yaml:"left"`
	Right bool `json:"right,omitempty" yaml:"right"`
	Up    bool `json:"up,omitempty" yaml:"up"`
	Down  bool `json:"down,omitempty" yaml:"down"`
}

// Vector returns the per-axis direction in screen coordinates (y grows
// downward).
func (in Intent) Vector() vector.Vec2 {
	var d vector.Vec2
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d
}

func (in Intent) Any() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// Frame is the observable world state after one step.
type Frame struct {
	Step           int         `json:"step"`
	Time           float64     `json:"time"`
	Player         vector.Vec2 `json:"player"`
	Velocity       vector.Vec2 `json:"velocity"`
	Obstacle       vector.Vec2 `json:"obstacle"`
	PlayerRadius   float64     `json:"player_radius"`
	ObstacleRadius float64     `json:"obstacle_radius"`
	Colliding      bool        `json:"colliding"`
	Bounced        bool        `json:"bounced,omitempty"`
	ClampedX       bool        `json:"clamped_x,omitempty"`
	ClampedY       bool        `json:"clamped_y,omitempty"`
	Intent         Intent      `json:"intent"`
}

// World advances a scene by one externally driven tick.
type World interface {
	Name() string
	Step(in Intent, dt float64) Frame
	Snapshot() Frame
	Reset()
}

type Controller interface {
	Compute(f Frame, t float64) Intent
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	Dt            float64
	Duration      float64
	Seed          int64
	ValidateState bool
}

// DefaultConfig steps at 60 frames per second for ten seconds.
func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60.0,
		Duration:      10.0,
		ValidateState: true,
	}
}

func (c Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	if c.Dt > c.Duration {
		return fmt.Errorf("%w: dt %f exceeds duration %f", ErrInvalidConfig, c.Dt, c.Duration)
	}
	return nil
}

type Result struct {
	World      string
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Final returns the last recorded frame.
func (r *Result) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
