package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/circlesim/internal/physics"
	"github.com/san-kum/circlesim/internal/vector"
)

var _ = Describe("CheckCollision", func() {
	DescribeTable("distance against radius sum",
		func(a, b vector.Vec2, ra, rb float64, want bool) {
			Expect(physics.CheckCollision(a, b, ra, rb)).To(Equal(want))
		},
		Entry("touching is not colliding", vector.New(0, 0), vector.New(10, 0), 5.0, 5.0, false),
		Entry("overlapping", vector.New(0, 0), vector.New(9, 0), 5.0, 5.0, true),
		Entry("apart", vector.New(0, 0), vector.New(30, 40), 10.0, 10.0, false),
		Entry("concentric", vector.New(2, 2), vector.New(2, 2), 1.0, 1.0, true),
		Entry("demo start positions", vector.New(100, 100), vector.New(300, 300), 30.0, 30.0, false),
	)

	It("is symmetric", func() {
		a, b := vector.New(1, 2), vector.New(5, 3)
		Expect(physics.CheckCollision(a, b, 2, 3)).To(Equal(physics.CheckCollision(b, a, 3, 2)))
	})

	It("works through Circle values", func() {
		c1 := physics.NewCircle(vector.New(0, 0), 5)
		c2 := physics.NewCircle(vector.New(8, 0), 5)
		Expect(c1.Overlaps(c2)).To(BeTrue())
		Expect(c1.Penetration(c2)).To(BeNumerically("~", 2.0, 1e-12))
		Expect(c1.Penetration(physics.NewCircle(vector.New(20, 0), 5))).To(BeZero())
	})
})

var _ = Describe("Update", func() {
	It("uses the updated velocity in the position term", func() {
		pos, vel := vector.Zero, vector.Zero
		physics.Update(&pos, &vel, 1, vector.New(0, 10))
		Expect(vel).To(Equal(vector.New(0, 10)))
		Expect(pos).To(Equal(vector.New(0, 15)))
	})

	It("moves at constant velocity without acceleration", func() {
		b := physics.NewBody(vector.New(1, 1), vector.New(2, -3))
		b.Update(0.5, vector.Zero)
		Expect(b.Pos).To(Equal(vector.New(2, -0.5)))
		Expect(b.Vel).To(Equal(vector.New(2, -3)))
	})

	It("is a no-op for a zero time step", func() {
		b := physics.NewBody(vector.New(4, 5), vector.New(1, 1))
		b.Update(0, vector.New(0, 9.81))
		Expect(b.Pos).To(Equal(vector.New(4, 5)))
		Expect(b.Vel).To(Equal(vector.New(1, 1)))
	})
})

var _ = Describe("Bounce", func() {
	It("flips and damps only the vertical component", func() {
		vel := vector.New(3, -8)
		physics.Bounce(&vel, physics.DefaultElasticity)
		Expect(vel.X).To(Equal(3.0))
		Expect(vel.Y).To(BeNumerically("~", 5.6, 1e-12))
	})

	It("reverses a perfectly elastic body", func() {
		b := physics.NewBody(vector.Zero, vector.New(-1, 4))
		b.Bounce(1)
		Expect(b.Vel).To(Equal(vector.New(-1, -4)))
	})
})

var _ = Describe("Clamp", func() {
	bounds := physics.BoundsFor(800, 600, 30)

	It("derives the center region from field and radius", func() {
		Expect(bounds.Min).To(Equal(vector.New(30, 30)))
		Expect(bounds.Max).To(Equal(vector.New(770, 570)))
	})

	DescribeTable("per-axis clamping",
		func(in, want vector.Vec2, wantX, wantY bool) {
			p := in
			cx, cy := physics.Clamp(&p, bounds)
			Expect(p).To(Equal(want))
			Expect(cx).To(Equal(wantX))
			Expect(cy).To(Equal(wantY))
			Expect(bounds.Contains(p)).To(BeTrue())
		},
		Entry("inside", vector.New(100, 100), vector.New(100, 100), false, false),
		Entry("left", vector.New(10, 100), vector.New(30, 100), true, false),
		Entry("bottom right", vector.New(900, 700), vector.New(770, 570), true, true),
		Entry("top", vector.New(400, -5), vector.New(400, 30), false, true),
		Entry("on the edge", vector.New(30, 570), vector.New(30, 570), false, false),
	)
})
