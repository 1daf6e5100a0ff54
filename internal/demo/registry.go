package demo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/circlesim/internal/sim"
)

var ErrUnknownDemo = errors.New("demo: unknown demo")

type Registry struct {
	demos map[string]func(Params) sim.World
}

func NewRegistry() *Registry {
	r := &Registry{demos: make(map[string]func(Params) sim.World)}
	r.Register("classic", func(p Params) sim.World { return NewClassic(p) })
	r.Register("gravity", func(p Params) sim.World { return NewGravity(p) })
	return r
}

func (r *Registry) Register(name string, fn func(Params) sim.World) {
	r.demos[name] = fn
}

func (r *Registry) Get(name string, p Params) (sim.World, error) {
	fn, ok := r.demos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownDemo, name, r.List())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return fn(p), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
