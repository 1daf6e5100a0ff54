package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/circlesim/internal/config"
	"github.com/san-kum/circlesim/internal/demo"
	"github.com/san-kum/circlesim/internal/metrics"
	"github.com/san-kum/circlesim/internal/report"
	"github.com/san-kum/circlesim/internal/sim"
)

type sweepFlags struct {
	runFlags
	param    string
	from     float64
	to       float64
	steps    int
	workers  int
	progress bool
}

func newSweepCmd() *cobra.Command {
	var f sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep [demo]",
		Short: "run a demo across a range of one parameter in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			return runSweep(cmd.Context(), cfg, &f)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.param, "param", "elasticity", "parameter to vary")
	cmd.Flags().Float64Var(&f.from, "from", 0.0, "first value")
	cmd.Flags().Float64Var(&f.to, "to", 1.0, "last value")
	cmd.Flags().IntVar(&f.steps, "steps", 11, "number of values")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent runs (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&f.progress, "progress", true, "show a progress bar")
	return cmd
}

// sweepValues returns n evenly spaced values from a to b inclusive.
func sweepValues(a, b float64, n int) []float64 {
	if n <= 1 {
		return []float64{a}
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return vals
}

func buildSweepJobs(cfg *config.Config, param string, values []float64) ([]sim.Job, error) {
	registry := demo.NewRegistry()
	jobs := make([]sim.Job, 0, len(values))
	for _, v := range values {
		p := cfg.Params()
		if err := p.SetParam(param, v); err != nil {
			return nil, err
		}
		world, err := registry.Get(cfg.Demo, p)
		if err != nil {
			return nil, err
		}
		ctrl, err := cfg.NewController()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, sim.Job{
			Name:       fmt.Sprintf("%s=%g", param, v),
			World:      world,
			Controller: ctrl,
			Metrics:    metrics.Default(cfg.Demo, p.Gravity),
		})
	}
	return jobs, nil
}

func runSweep(parent context.Context, cfg *config.Config, f *sweepFlags) error {
	ctx, stop := signalContext(parent)
	defer stop()

	values := sweepValues(f.from, f.to, f.steps)
	jobs, err := buildSweepJobs(cfg, f.param, values)
	if err != nil {
		return err
	}

	ens := sim.NewEnsemble(jobs, f.workers, log)
	log.Info("sweep started", zap.String("demo", cfg.Demo), zap.String("param", f.param), zap.Int("runs", len(jobs)))

	var results []*sim.Result
	work := func(ctx context.Context, progress func(done, total int)) error {
		ens.OnProgress = progress
		var err error
		results, err = ens.Run(ctx, cfg.SimConfig())
		return err
	}

	if f.progress {
		err = report.RunWithProgress(ctx, os.Stderr, "sweep "+f.param, len(jobs), work)
	} else {
		err = work(ctx, nil)
	}
	if err != nil {
		return err
	}

	fmt.Println(sweepTable(f.param, values, results))
	return nil
}

func sweepTable(param string, values []float64, results []*sim.Result) string {
	names := make([]string, 0)
	if len(results) > 0 {
		for name := range results[0].Metrics {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(report.Subtle).
		Headers(append([]string{param}, names...)...)

	for i, res := range results {
		row := []string{strconv.FormatFloat(values[i], 'g', 6, 64)}
		for _, n := range names {
			row = append(row, fmt.Sprintf("%.4g", res.Metrics[n]))
		}
		t.Row(row...)
	}
	return t.String()
}
