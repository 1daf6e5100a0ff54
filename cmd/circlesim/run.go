package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/circlesim/internal/config"
	"github.com/san-kum/circlesim/internal/demo"
	"github.com/san-kum/circlesim/internal/metrics"
	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/report"
	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/storage"
)

type runFlags struct {
	dt         float64
	duration   float64
	seed       int64
	controller string
	elasticity float64
	gravity    float64
	speed      float64
	configFile string
	preset     string
	noSave     bool
	plot       bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.dt, "dt", config.DefaultDt, "timestep in seconds")
	cmd.Flags().Float64Var(&f.duration, "time", config.DefaultDuration, "duration in seconds")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed recorded with the run")
	cmd.Flags().StringVar(&f.controller, "controller", "none", "input source (none, seek, script)")
	cmd.Flags().Float64Var(&f.elasticity, "elasticity", physics.DefaultElasticity, "bounce elasticity (gravity)")
	cmd.Flags().Float64Var(&f.gravity, "gravity", demo.DefaultGravity, "downward acceleration in px/s² (gravity)")
	cmd.Flags().Float64Var(&f.speed, "speed", demo.DefaultMoveSpeed, "player move speed in px/s")
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use preset configuration")
}

// resolve layers preset, config file and explicitly set flags, in that
// order, on top of the defaults.
func (f *runFlags) resolve(cmd *cobra.Command, demoName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Demo = demoName

	if f.preset != "" {
		p, err := config.LookupPreset(demoName, f.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if f.configFile != "" {
		if err := config.LoadInto(f.configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Demo != demoName {
			log.Warn("config file names a different demo; using argument",
				zap.String("file_demo", cfg.Demo), zap.String("demo", demoName))
			cfg.Demo = demoName
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = f.dt
	}
	if flags.Changed("time") {
		cfg.Duration = f.duration
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("controller") {
		cfg.Controller = f.controller
	}
	if flags.Changed("elasticity") {
		cfg.Physics.Elasticity = f.elasticity
	}
	if flags.Changed("gravity") {
		cfg.Physics.Gravity.Y = f.gravity
	}
	if flags.Changed("speed") {
		cfg.Physics.MoveSpeed = f.speed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "run a demo headless and store its trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cfg, f.preset, f.noSave, f.plot)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&f.noSave, "no-save", false, "do not store the run")
	cmd.Flags().BoolVar(&f.plot, "plot", false, "plot the trajectory after the run")
	return cmd
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}

func runDemo(parent context.Context, cfg *config.Config, preset string, noSave, plot bool) error {
	ctx, stop := signalContext(parent)
	defer stop()

	world, err := demo.NewRegistry().Get(cfg.Demo, cfg.Params())
	if err != nil {
		return err
	}
	ctrl, err := cfg.NewController()
	if err != nil {
		return err
	}

	s := sim.New(world, ctrl, log)
	for _, m := range metrics.Default(cfg.Demo, cfg.Physics.Gravity) {
		s.AddMetric(m)
	}

	log.Info("running demo", zap.String("demo", cfg.Demo), zap.String("controller", cfg.Controller),
		zap.Float64("dt", cfg.Dt), zap.Float64("duration", cfg.Duration))
	start := time.Now()

	result, err := s.Run(ctx, cfg.SimConfig())
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		log.Warn("simulation error", zap.Error(e))
	}
	elapsed := time.Since(start)

	info := map[string]string{
		"demo":       cfg.Demo,
		"controller": cfg.Controller,
		"steps":      fmt.Sprintf("%d", result.StepsTaken),
		"elapsed":    elapsed.String(),
		"final":      result.Final().Player.String(),
	}

	if !noSave {
		st := storage.New(dataDir, log)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunInfo{
			Demo:       cfg.Demo,
			Preset:     preset,
			Controller: cfg.Controller,
			Seed:       cfg.Seed,
			Dt:         cfg.Dt,
			Duration:   cfg.Duration,
			Elasticity: cfg.Physics.Elasticity,
		}, result)
		if err != nil {
			return err
		}
		info["run id"] = runID
	}

	fmt.Println(report.Summary(cfg.Demo+" run", info, result.Metrics))

	if plot {
		for _, p := range report.PlotTrajectory(result.Frames) {
			fmt.Println(p)
			fmt.Println()
		}
	}
	return nil
}
