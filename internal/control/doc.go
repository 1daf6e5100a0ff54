// Package control provides input sources for the circle demos.
//
// Controllers implement [sim.Controller] and decide which directions are
// held each frame:
//
//   - [None]: never moves
//   - [Script]: holds keys during fixed time windows
//   - [Seek]: steers toward a target point
//
// # Usage
//
//	ctrl, err := control.NewScript([]control.Step{
//	    {From: 0, To: 2, Keys: []string{"right", "down"}},
//	})
//	s := sim.New(world, ctrl, log)
package control
