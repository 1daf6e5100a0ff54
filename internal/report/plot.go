package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/circlesim/internal/sim"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// Series is one named column of a trajectory.
type Series struct {
	Caption string
	Data    []float64
}

// TrajectorySeries extracts position, velocity and collision state from
// frames. Colliding is plotted as 0/1.
func TrajectorySeries(frames []sim.Frame) []Series {
	cols := []Series{
		{Caption: "player x", Data: make([]float64, len(frames))},
		{Caption: "player y", Data: make([]float64, len(frames))},
		{Caption: "velocity y", Data: make([]float64, len(frames))},
		{Caption: "colliding", Data: make([]float64, len(frames))},
	}
	for i, f := range frames {
		cols[0].Data[i] = f.Player.X
		cols[1].Data[i] = f.Player.Y
		cols[2].Data[i] = f.Velocity.Y
		if f.Colliding {
			cols[3].Data[i] = 1
		}
	}
	return cols
}

// Plot draws one series. Empty series render as an empty string.
func Plot(s Series) string {
	if len(s.Data) == 0 {
		return ""
	}
	return asciigraph.Plot(s.Data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(s.Caption),
	)
}

// PlotTrajectory draws every series of frames, skipping flat zero series such
// as the velocity of a classic run.
func PlotTrajectory(frames []sim.Frame) []string {
	var out []string
	for _, s := range TrajectorySeries(frames) {
		if allZero(s.Data) {
			continue
		}
		out = append(out, Plot(s))
	}
	return out
}

// PlotPath overlays the player's x and y over time.
func PlotPath(frames []sim.Frame) string {
	if len(frames) == 0 {
		return ""
	}
	xs := make([]float64, len(frames))
	ys := make([]float64, len(frames))
	for i, f := range frames {
		xs[i] = f.Player.X
		ys[i] = f.Player.Y
	}
	return asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption("x (cyan) and y (magenta) over time"),
	)
}

func allZero(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}
