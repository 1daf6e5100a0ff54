package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/circlesim/internal/config"
	"github.com/san-kum/circlesim/internal/demo"
	"github.com/san-kum/circlesim/internal/export"
	"github.com/san-kum/circlesim/internal/report"
	"github.com/san-kum/circlesim/internal/storage"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir, log).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(report.Subtle).
				Headers("ID", "DEMO", "TIME", "DURATION", "DT", "CTRL", "STEPS")
			for _, run := range runs {
				t.Row(
					run.ID,
					run.Demo,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					fmt.Sprintf("%.2fs", run.Duration),
					fmt.Sprintf("%.4fs", run.Dt),
					run.Controller,
					fmt.Sprintf("%d", run.Steps),
				)
			}
			fmt.Println(t)
			return nil
		},
	}
}

func newPlotCmd() *cobra.Command {
	var path bool
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir, log)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			frames, err := st.LoadFrames(args[0])
			if err != nil {
				return err
			}
			if len(frames) == 0 {
				return fmt.Errorf("no data to plot")
			}

			fmt.Printf("run: %s\n", meta.ID)
			fmt.Printf("demo: %s\n", meta.Demo)
			fmt.Printf("samples: %d\n\n", len(frames))

			if path {
				fmt.Println(report.PlotPath(frames))
				return nil
			}
			for _, p := range report.PlotTrajectory(frames) {
				fmt.Println(p)
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&path, "path", false, "overlay x and y in one plot")
	return cmd
}

func newExportJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir, log).ExportJSON(os.Stdout, args[0])
		},
	}
}

func newExportSVGCmd() *cobra.Command {
	var width, height float64
	var out string
	cmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw a stored run's path as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := storage.New(dataDir, log).LoadFrames(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				return export.WritePathSVG(os.Stdout, frames, width, height)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.WritePathSVG(f, frames, width, height); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&width, "width", demo.DefaultWidth, "field width")
	cmd.Flags().Float64Var(&height, "height", demo.DefaultHeight, "field height")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newInitConfigCmd() *cobra.Command {
	var demoName, preset string
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file to start from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Demo = demoName
			if preset != "" {
				p, err := config.LookupPreset(demoName, preset)
				if err != nil {
					return err
				}
				cfg = p
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&demoName, "demo", "classic", "demo the config is for")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	return cmd
}
