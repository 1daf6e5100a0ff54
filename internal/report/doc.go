// Package report formats stored runs and sweeps for the terminal: lipgloss
// styled summaries, asciigraph trajectory plots and a Bubble Tea progress
// view for long sweeps.
package report
