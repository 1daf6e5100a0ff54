package sim

import (
	"context"
	"math"

	"go.uber.org/zap"
)

type Simulator struct {
	world      World
	controller Controller
	metrics    []Metric
	observers  []Observer
	log        *zap.Logger
}

func New(world World, controller Controller, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{
		world:      world,
		controller: controller,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		log:        log.With(zap.String("world", world.Name())),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Steps is the number of whole ticks cfg covers.
func Steps(cfg Config) int {
	return int(math.Floor(cfg.Duration/cfg.Dt + 1e-9))
}

// Run resets the world and steps it for cfg.Duration. The initial snapshot is
// recorded as frame 0, so a completed run holds Steps(cfg)+1 frames. Metrics
// and observers see every recorded frame, frame 0 included.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	steps := Steps(cfg)
	result := &Result{
		World:   s.world.Name(),
		Frames:  make([]Frame, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.world.Reset()
	f := s.world.Snapshot()
	s.observe(f)
	result.Frames = append(result.Frames, f)

	s.log.Debug("run started", zap.Int("steps", steps), zap.Float64("dt", cfg.Dt))

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		in := s.controller.Compute(f, t)
		next := s.world.Step(in, cfg.Dt)
		t += cfg.Dt
		next.Step = i + 1
		next.Time = t

		if cfg.ValidateState {
			if err := validate(next); err != nil {
				result.Errors = append(result.Errors, err)
				s.log.Warn("run aborted", zap.Error(err))
				break
			}
		}

		f = next
		s.observe(f)

		result.StepsTaken++
		result.Frames = append(result.Frames, f)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.log.Debug("run finished", zap.Int("steps_taken", result.StepsTaken))
	return result, nil
}

func (s *Simulator) observe(f Frame) {
	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, obs := range s.observers {
		obs.OnFrame(f)
	}
}

// validate rejects frames whose position or velocity is NaN or infinite.
func validate(f Frame) error {
	if f.Player.IsValid() && f.Velocity.IsValid() {
		return nil
	}
	return SimError{Time: f.Time, Step: f.Step, Message: "invalid state (NaN/Inf)"}
}

// RunWithCallback steps the world without recording frames or feeding
// metrics. Stepping stops early when callback returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.world.Reset()
	f := s.world.Snapshot()
	if !callback(f) {
		return nil
	}

	steps := Steps(cfg)
	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f = s.world.Step(s.controller.Compute(f, t), cfg.Dt)
		t += cfg.Dt
		f.Step = i + 1
		f.Time = t

		if cfg.ValidateState {
			if err := validate(f); err != nil {
				return err
			}
		}
		if !callback(f) {
			return nil
		}
	}

	return nil
}
