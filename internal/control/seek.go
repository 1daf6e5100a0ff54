package control

import (
	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

// Seek holds the keys that move the player toward Target. Axes within
// Deadzone of the target are released.
type Seek struct {
	Target   vector.Vec2
	Deadzone float64
}

func NewSeek(target vector.Vec2, deadzone float64) *Seek {
	return &Seek{Target: target, Deadzone: deadzone}
}

func (s *Seek) Compute(f sim.Frame, t float64) sim.Intent {
	d := s.Target.Sub(f.Player)
	return sim.Intent{
		Left:  d.X < -s.Deadzone,
		Right: d.X > s.Deadzone,
		Up:    d.Y < -s.Deadzone,
		Down:  d.Y > s.Deadzone,
	}
}
