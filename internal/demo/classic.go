package demo

import (
	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/sim"
	"github.com/san-kum/circlesim/internal/vector"
)

// Classic moves the player by input only. Hitting an edge clamps the
// position and nothing else.
type Classic struct {
	Params

	player    vector.Vec2
	colliding bool
	clampedX  bool
	clampedY  bool
}

func NewClassic(p Params) *Classic {
	c := &Classic{Params: p}
	c.Reset()
	return c
}

func (c *Classic) Name() string { return "classic" }

func (c *Classic) Reset() {
	c.player = c.PlayerStart
	c.clampedX, c.clampedY = false, false
	c.colliding = physics.CheckCollision(c.player, c.ObstacleStart, c.PlayerRadius, c.ObstacleRadius)
}

func (c *Classic) Step(in sim.Intent, dt float64) sim.Frame {
	c.player = c.player.Add(in.Vector().Scale(c.MoveSpeed * dt))
	c.clampedX, c.clampedY = physics.Clamp(&c.player, c.Bounds())
	c.colliding = physics.CheckCollision(c.player, c.ObstacleStart, c.PlayerRadius, c.ObstacleRadius)

	f := c.Snapshot()
	f.Intent = in
	return f
}

func (c *Classic) Snapshot() sim.Frame {
	return sim.Frame{
		Player:         c.player,
		Obstacle:       c.ObstacleStart,
		PlayerRadius:   c.PlayerRadius,
		ObstacleRadius: c.ObstacleRadius,
		Colliding:      c.colliding,
		ClampedX:       c.clampedX,
		ClampedY:       c.clampedY,
	}
}
