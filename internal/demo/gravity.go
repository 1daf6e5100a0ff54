package demo

import (
	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/sim"
)

// Gravity adds a velocity to the player. Each frame applies input, then
// integrates under constant gravity, then clamps to the field, then bounces
// the vertical velocity if the player overlaps the obstacle. Clamping and
// bouncing are independent: landing on an edge keeps the velocity, so the
// player rests against the floor while gravity keeps accelerating it.
type Gravity struct {
	Params

	body      physics.Body
	colliding bool
	bounced   bool
	clampedX  bool
	clampedY  bool
}

func NewGravity(p Params) *Gravity {
	g := &Gravity{Params: p}
	g.Reset()
	return g
}

func (g *Gravity) Name() string { return "gravity" }

func (g *Gravity) Reset() {
	g.body = physics.Body{Pos: g.PlayerStart, Vel: g.PlayerVelocity}
	g.bounced, g.clampedX, g.clampedY = false, false, false
	g.colliding = physics.CheckCollision(g.body.Pos, g.ObstacleStart, g.PlayerRadius, g.ObstacleRadius)
}

func (g *Gravity) Step(in sim.Intent, dt float64) sim.Frame {
	g.body.Pos = g.body.Pos.Add(in.Vector().Scale(g.MoveSpeed * dt))
	g.body.Update(dt, g.Gravity)
	g.clampedX, g.clampedY = physics.Clamp(&g.body.Pos, g.Bounds())

	g.colliding = physics.CheckCollision(g.body.Pos, g.ObstacleStart, g.PlayerRadius, g.ObstacleRadius)
	g.bounced = g.colliding
	if g.colliding {
		g.body.Bounce(g.Elasticity)
	}

	f := g.Snapshot()
	f.Intent = in
	return f
}

func (g *Gravity) Snapshot() sim.Frame {
	return sim.Frame{
		Player:         g.body.Pos,
		Velocity:       g.body.Vel,
		Obstacle:       g.ObstacleStart,
		PlayerRadius:   g.PlayerRadius,
		ObstacleRadius: g.ObstacleRadius,
		Colliding:      g.colliding,
		Bounced:        g.bounced,
		ClampedX:       g.clampedX,
		ClampedY:       g.clampedY,
	}
}
