package metrics

import (
	"math"

	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

// SpecificEnergy is kinetic plus potential energy per unit mass under a
// uniform field g. Potential is measured from the origin.
func SpecificEnergy(pos, vel, g vector.Vec2) float64 {
	return 0.5*vel.Dot(vel) - g.Dot(pos)
}

// Energy reports the mean specific energy over observed frames.
type Energy struct {
	name        string
	gravity     vector.Vec2
	samples     int
	totalEnergy float64
}

func NewEnergy(gravity vector.Vec2) *Energy {
	return &Energy{
		name:    "energy",
		gravity: gravity,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f sim.Frame) {
	e.totalEnergy += SpecificEnergy(f.Player, f.Velocity, e.gravity)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift reports the largest relative change in specific energy from the
// first observed frame. Bounces and clamps both remove energy, so nonzero
// drift is normal for the gravity demo.
type EnergyDrift struct {
	name          string
	gravity       vector.Vec2
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(gravity vector.Vec2) *EnergyDrift {
	return &EnergyDrift{
		name:    "energy_drift",
		gravity: gravity,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(f sim.Frame) {
	energy := SpecificEnergy(f.Player, f.Velocity, e.gravity)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
