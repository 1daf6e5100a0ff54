package vector_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/circlesim/internal/vector"
)

const eps = 1e-9

var samples = []vector.Vec2{
	vector.New(1, 2),
	vector.New(-3.5, 4.25),
	vector.New(0.1, 0.2),
	vector.New(1e6, -1e-6),
	vector.New(-7, -11),
}

var _ = Describe("Vec2", func() {
	Describe("arithmetic", func() {
		It("adds and subtracts component-wise", func() {
			a, b := vector.New(1, 2), vector.New(4, 6)
			Expect(a.Add(b)).To(Equal(vector.New(5, 8)))
			Expect(b.Sub(a)).To(Equal(vector.New(3, 4)))
			Expect(vector.Sub(a, b)).To(Equal(vector.New(-3, -4)))
		})

		It("scales by a scalar", func() {
			Expect(vector.New(1.5, -2).Scale(2)).To(Equal(vector.New(3, -4)))
			Expect(vector.Scale(vector.New(1, 1), 0)).To(Equal(vector.Zero))
		})

		It("is commutative under addition", func() {
			for _, a := range samples {
				for _, b := range samples {
					Expect(vector.Add(a, b).Equal(vector.Add(b, a))).To(BeTrue())
				}
			}
		})

		It("round-trips scale and divide within tolerance", func() {
			for _, a := range samples {
				for _, k := range []float64{3, -0.7, 1e-3, 12345.678} {
					got, err := vector.Div(vector.Scale(a, k), k)
					Expect(err).NotTo(HaveOccurred())
					Expect(got.ApproxEqual(a, 1e-6*math.Max(1, a.Magnitude()))).To(BeTrue(), "a=%v k=%v got=%v", a, k, got)
				}
			}
		})

		It("fails to divide by exactly zero", func() {
			_, err := vector.New(1, 2).Div(0)
			Expect(err).To(MatchError(vector.ErrDivisionByZero))
		})

		It("allows tiny non-zero divisors", func() {
			got, err := vector.New(1, 0).Div(1e-300)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.X).To(BeNumerically(">", 1e299))
		})

		It("computes the dot product", func() {
			Expect(vector.Dot(vector.New(1, 2), vector.New(3, 4))).To(Equal(11.0))
			Expect(vector.New(1, 0).Dot(vector.New(0, 1))).To(BeZero())
		})
	})

	Describe("geometry", func() {
		It("measures a 3-4-5 triangle exactly", func() {
			Expect(vector.Distance(vector.New(0, 0), vector.New(3, 4))).To(Equal(5.0))
			Expect(vector.New(3, 4).Magnitude()).To(Equal(5.0))
		})

		It("never returns a negative magnitude", func() {
			for _, a := range samples {
				Expect(a.Magnitude()).To(BeNumerically(">=", 0))
			}
		})

		It("computes angles with atan2", func() {
			Expect(vector.Angle(vector.New(1, 0))).To(Equal(0.0))
			Expect(vector.New(0, 1).Angle()).To(BeNumerically("~", math.Pi/2, eps))
			Expect(vector.New(-1, 0).Angle()).To(BeNumerically("~", math.Pi, eps))
		})
	})

	Describe("normalization", func() {
		It("produces unit vectors", func() {
			for _, a := range samples {
				n, err := vector.Normalize(a)
				Expect(err).NotTo(HaveOccurred())
				Expect(n.Magnitude()).To(BeNumerically("~", 1.0, eps))
			}
		})

		It("rejects the zero vector", func() {
			_, err := vector.Zero.Normalize()
			Expect(err).To(MatchError(vector.ErrZeroVector))
		})

		It("mutates in place and returns the receiver", func() {
			v := vector.New(0, 5)
			got, err := v.NormalizeInPlace()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeIdenticalTo(&v))
			Expect(v).To(Equal(vector.New(0, 1)))
		})

		It("leaves the receiver untouched on failure", func() {
			v := vector.Zero
			_, err := v.NormalizeInPlace()
			Expect(err).To(MatchError(vector.ErrZeroVector))
			Expect(v).To(Equal(vector.Zero))
		})
	})

	Describe("equality", func() {
		It("is exact", func() {
			a := vector.New(0.1, 0.2).Add(vector.New(0.2, 0.1))
			Expect(a.Equal(vector.New(0.3, 0.3))).To(BeFalse())
			Expect(a.ApproxEqual(vector.New(0.3, 0.3), eps)).To(BeTrue())
		})
	})

	It("formats like a coordinate pair", func() {
		Expect(vector.New(1.5, -2).String()).To(Equal("(1.5, -2)"))
	})

	It("flags NaN and Inf components", func() {
		Expect(vector.New(1, 2).IsValid()).To(BeTrue())
		Expect(vector.New(math.NaN(), 0).IsValid()).To(BeFalse())
		Expect(vector.New(0, math.Inf(-1)).IsValid()).To(BeFalse())
	})
})
