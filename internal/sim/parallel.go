package sim

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job is one independent run inside an Ensemble. Each job owns its world,
// controller and metrics.
type Job struct {
	Name       string
	World      World
	Controller Controller
	Metrics    []Metric
}

type Ensemble struct {
	jobs  []Job
	limit int
	log   *zap.Logger

	// OnProgress, if set, is called after each finished job. It may be
	// called from several goroutines.
	OnProgress func(done, total int)
}

// NewEnsemble runs at most limit jobs at once; limit <= 0 uses GOMAXPROCS.
func NewEnsemble(jobs []Job, limit int, log *zap.Logger) *Ensemble {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ensemble{jobs: jobs, limit: limit, log: log}
}

// Run executes every job with cfg and returns results in job order. The first
// failing job cancels the rest.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(e.jobs))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i, job := range e.jobs {
		g.Go(func() error {
			s := New(job.World, job.Controller, e.log.With(zap.String("job", job.Name)))
			for _, m := range job.Metrics {
				s.AddMetric(m)
			}

			res, err := s.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("job %s: %w", job.Name, err)
			}
			results[i] = res

			n := done.Add(1)
			if e.OnProgress != nil {
				e.OnProgress(int(n), len(e.jobs))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
