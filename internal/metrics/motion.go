package metrics

import (
	"math"

	"github.com/san-kum/circlesim/internal/sim"
)

type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(f sim.Frame) {
	m.max = math.Max(m.max, f.Velocity.Magnitude())
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// Containment is the fraction of frames in which the player did not have to
// be clamped back into the field.
type Containment struct {
	clamped int
	samples int
}

func NewContainment() *Containment { return &Containment{} }

func (c *Containment) Name() string { return "containment" }

func (c *Containment) Observe(f sim.Frame) {
	c.samples++
	if f.ClampedX || f.ClampedY {
		c.clamped++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.clamped)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.clamped = 0
	c.samples = 0
}

// InputActivity is the fraction of frames with any direction held.
type InputActivity struct {
	active  int
	samples int
}

func NewInputActivity() *InputActivity { return &InputActivity{} }

func (a *InputActivity) Name() string { return "input_activity" }

func (a *InputActivity) Observe(f sim.Frame) {
	a.samples++
	if f.Intent.Any() {
		a.active++
	}
}

func (a *InputActivity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return float64(a.active) / float64(a.samples)
}

func (a *InputActivity) Reset() {
	a.active = 0
	a.samples = 0
}
