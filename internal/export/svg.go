package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/circlesim/internal/sim"
)

const (
	pathColor     = "#00ccff"
	collideColor  = "#ff4444"
	boundaryColor = "#444466"
)

// PathSVG draws the player's path over a width×height field. Field
// coordinates are used as-is, so y grows downward like the demos. Frames
// where a collision begins are marked with a dot.
func PathSVG(frames []sim.Frame, width, height float64) string {
	if len(frames) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a" stroke="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, boundaryColor, pathColor))

	for i, f := range frames {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.Player.X, f.Player.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", f.Player.X, f.Player.Y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", collideColor))
	prev := false
	for _, f := range frames {
		if f.Colliding && !prev {
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\"/>\n", f.Player.X, f.Player.Y))
		}
		prev = f.Colliding
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WritePathSVG writes PathSVG to w. It fails when there is nothing to draw.
func WritePathSVG(w io.Writer, frames []sim.Frame, width, height float64) error {
	svg := PathSVG(frames, width, height)
	if svg == "" {
		return fmt.Errorf("export: need at least two frames and a positive field size")
	}
	_, err := io.WriteString(w, svg)
	return err
}
