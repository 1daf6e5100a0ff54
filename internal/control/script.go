package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/circlesim/internal/sim"
)

var ErrUnknownKey = errors.New("control: unknown key")

// Step holds Keys for times in [From, To).
type Step struct {
	From float64  `yaml:"from" json:"from"`
	To   float64  `yaml:"to" json:"to"`
	Keys []string `yaml:"keys" json:"keys"`
}

type window struct {
	from, to float64
	in       sim.Intent
}

// Script replays time-windowed key holds. Overlapping windows combine.
type Script struct {
	windows []window
}

func NewScript(steps []Step) (*Script, error) {
	s := &Script{windows: make([]window, 0, len(steps))}
	for i, st := range steps {
		if st.To < st.From {
			return nil, fmt.Errorf("control: step %d ends at %g before it starts at %g", i, st.To, st.From)
		}
		in, err := ParseKeys(st.Keys)
		if err != nil {
			return nil, fmt.Errorf("control: step %d: %w", i, err)
		}
		s.windows = append(s.windows, window{from: st.From, to: st.To, in: in})
	}
	return s, nil
}

func (s *Script) Compute(f sim.Frame, t float64) sim.Intent {
	var out sim.Intent
	for _, w := range s.windows {
		if t < w.from || t >= w.to {
			continue
		}
		out.Left = out.Left || w.in.Left
		out.Right = out.Right || w.in.Right
		out.Up = out.Up || w.in.Up
		out.Down = out.Down || w.in.Down
	}
	return out
}

// End returns the time the last window closes.
func (s *Script) End() float64 {
	end := 0.0
	for _, w := range s.windows {
		if w.to > end {
			end = w.to
		}
	}
	return end
}

// ParseKeys maps key names (left, right, up, down; case-insensitive) to an
// intent.
func ParseKeys(keys []string) (sim.Intent, error) {
	var in sim.Intent
	for _, k := range keys {
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "up":
			in.Up = true
		case "down":
			in.Down = true
		default:
			return sim.Intent{}, fmt.Errorf("%w: %q", ErrUnknownKey, k)
		}
	}
	return in, nil
}
