package control

import "github.com/san-kum/circlesim/internal/sim"

type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Compute(f sim.Frame, t float64) sim.Intent {
	return sim.Intent{}
}
