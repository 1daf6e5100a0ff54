package metrics

import (
	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

// Default returns the metric set recorded for a demo run. Energy metrics are
// only meaningful for the gravity demo.
func Default(demo string, gravity vector.Vec2) []sim.Metric {
	ms := []sim.Metric{
		NewCollisionFrames(),
		NewCollisionEvents(),
		NewMaxPenetration(),
		NewContainment(),
		NewInputActivity(),
	}
	if demo == "gravity" {
		ms = append(ms,
			NewBounces(),
			NewMaxSpeed(),
			NewEnergy(gravity),
			NewEnergyDrift(gravity),
		)
	}
	return ms
}
