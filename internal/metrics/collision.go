package metrics

import (
	"math"

	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/sim"
)

// CollisionFrames counts frames spent overlapping the obstacle.
type CollisionFrames struct {
	frames int
}

func NewCollisionFrames() *CollisionFrames { return &CollisionFrames{} }

func (c *CollisionFrames) Name() string { return "collision_frames" }

func (c *CollisionFrames) Observe(f sim.Frame) {
	if f.Colliding {
		c.frames++
	}
}

func (c *CollisionFrames) Value() float64 { return float64(c.frames) }
func (c *CollisionFrames) Reset()         { c.frames = 0 }

// CollisionEvents counts transitions from apart to overlapping.
type CollisionEvents struct {
	events int
	prev   bool
}

func NewCollisionEvents() *CollisionEvents { return &CollisionEvents{} }

func (c *CollisionEvents) Name() string { return "collision_events" }

func (c *CollisionEvents) Observe(f sim.Frame) {
	if f.Colliding && !c.prev {
		c.events++
	}
	c.prev = f.Colliding
}

func (c *CollisionEvents) Value() float64 { return float64(c.events) }

func (c *CollisionEvents) Reset() {
	c.events = 0
	c.prev = false
}

type Bounces struct {
	n int
}

func NewBounces() *Bounces { return &Bounces{} }

func (b *Bounces) Name() string { return "bounces" }

func (b *Bounces) Observe(f sim.Frame) {
	if f.Bounced {
		b.n++
	}
}

func (b *Bounces) Value() float64 { return float64(b.n) }
func (b *Bounces) Reset()         { b.n = 0 }

// MaxPenetration is the deepest overlap between player and obstacle seen in
// any frame.
type MaxPenetration struct {
	max float64
}

func NewMaxPenetration() *MaxPenetration { return &MaxPenetration{} }

func (m *MaxPenetration) Name() string { return "max_penetration" }

func (m *MaxPenetration) Observe(f sim.Frame) {
	player := physics.NewCircle(f.Player, f.PlayerRadius)
	obstacle := physics.NewCircle(f.Obstacle, f.ObstacleRadius)
	m.max = math.Max(m.max, player.Penetration(obstacle))
}

func (m *MaxPenetration) Value() float64 { return m.max }
func (m *MaxPenetration) Reset()         { m.max = 0 }
