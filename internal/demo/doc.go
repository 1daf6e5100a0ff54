// Package demo implements the two circle scenes as [sim.World] values.
//
//   - [Classic]: a player circle steered by input, clamped to the field,
//     flagged while it overlaps a static obstacle
//   - [Gravity]: the same scene with a falling player whose vertical velocity
//     is bounced by the obstacle
//
// Positions use screen coordinates: the origin is the top-left corner of the
// field and y grows downward, so positive gravity pulls toward the bottom.
package demo
