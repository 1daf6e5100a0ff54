package main

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/circlesim/internal/config"
	"github.com/san-kum/circlesim/internal/demo"
	"github.com/san-kum/circlesim/internal/sim"
)

type traceFlags struct {
	runFlags
	untilCollision bool
	every          int
}

func newTraceCmd() *cobra.Command {
	var f traceFlags
	cmd := &cobra.Command{
		Use:   "trace [demo]",
		Short: "stream frames as JSON lines without storing the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			n, err := traceDemo(ctx, cfg, os.Stdout, f.untilCollision, f.every)
			log.Info("trace finished", zap.Int("frames", n))
			return err
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&f.untilCollision, "until-collision", false, "stop after the first colliding frame")
	cmd.Flags().IntVar(&f.every, "every", 1, "write every nth frame")
	return cmd
}

// traceDemo writes frames of cfg's demo to w, one JSON object per line, and
// returns how many were written. The first colliding frame is always
// written when untilCollision is set.
func traceDemo(ctx context.Context, cfg *config.Config, w io.Writer, untilCollision bool, every int) (int, error) {
	if every < 1 {
		every = 1
	}
	world, err := demo.NewRegistry().Get(cfg.Demo, cfg.Params())
	if err != nil {
		return 0, err
	}
	ctrl, err := cfg.NewController()
	if err != nil {
		return 0, err
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	written := 0
	var encErr error

	err = sim.New(world, ctrl, log).RunWithCallback(ctx, cfg.SimConfig(), func(f sim.Frame) bool {
		stop := untilCollision && f.Colliding
		if f.Step%every == 0 || stop {
			if encErr = enc.Encode(f); encErr != nil {
				return false
			}
			written++
		}
		return !stop
	})
	if encErr != nil {
		return written, encErr
	}
	return written, err
}
