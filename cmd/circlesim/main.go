package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/circlesim/internal/config"
	"github.com/san-kum/circlesim/internal/demo"
	"github.com/san-kum/circlesim/internal/logging"
)

var (
	dataDir string
	logOpts = logging.DefaultOptions()
	log     = zap.NewNop()
)

// main registers commands and flags and executes the root command. It exits
// with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "circlesim",
		Short:         "headless circle collision and bounce demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.NewStderr(logOpts)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".circlesim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logOpts.Level, "log-level", logOpts.Level, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logOpts.Format, "log-format", logOpts.Format, "console log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&logOpts.File, "log-file", "", "also write JSON logs to this rotating file")

	demosCmd := &cobra.Command{
		Use:   "demos",
		Short: "list demos and their tunable parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range demo.NewRegistry().List() {
				fmt.Println(name)
			}
			fmt.Printf("\nparameters: %v\n", demo.ParamNames())
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for demo: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newTraceCmd(),
		newListCmd(),
		newPlotCmd(),
		newExportJSONCmd(),
		newExportSVGCmd(),
		newInitConfigCmd(),
		demosCmd,
		presetsCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
