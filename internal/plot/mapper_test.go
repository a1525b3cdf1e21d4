package plot

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Mapper", func() {
	DescribeTable("maps the corners of the range to the corners of the surface",
		func(w, h int, r Range) {
			m := Mapper{Width: w, Height: h, Range: r}

			x, y := m.Map(r.Xmin, r.Ymax)
			Expect(x).To(BeNumerically("~", 0, 1))
			Expect(y).To(BeNumerically("~", 0, 1))

			x, y = m.Map(r.Xmax, r.Ymin)
			Expect(x).To(BeNumerically("~", w-1, 1))
			Expect(y).To(BeNumerically("~", h-1, 1))

			x, y = m.Map(r.Xmax, r.Ymax)
			Expect(x).To(BeNumerically("~", w-1, 1))
			Expect(y).To(BeNumerically("~", 0, 1))

			x, y = m.Map(r.Xmin, r.Ymin)
			Expect(x).To(BeNumerically("~", 0, 1))
			Expect(y).To(BeNumerically("~", h-1, 1))
		},
		Entry("identity", 10, 10, DefaultRange(10, 10)),
		Entry("mandelbrot window", 640, 480, Range{Xmin: -2.4, Xmax: 1.33, Ymin: -1.4, Ymax: 1.4}),
		Entry("reversed x", 100, 50, Range{Xmin: 10, Xmax: -10, Ymin: 0, Ymax: 1}),
		Entry("unit square", 3, 7, Range{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}),
	)

	It("puts row 0 at the top for the identity range", func() {
		m := Mapper{Width: 10, Height: 10, Range: DefaultRange(10, 10)}
		x, y := m.Map(0, 0)
		Expect(x).To(Equal(0))
		Expect(y).To(Equal(0))

		x, y = m.Map(9, 9)
		Expect(x).To(Equal(9))
		Expect(y).To(Equal(9))
	})

	It("clamps only the exact upper boundary", func() {
		m := Mapper{Width: 10, Height: 10, Range: Range{Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10}}
		Expect(m.X(10)).To(Equal(9))
		Expect(m.X(11)).To(Equal(11))
		Expect(m.Y(0)).To(Equal(9))
	})

	It("truncates small negative offsets toward zero", func() {
		m := Mapper{Width: 10, Height: 10, Range: Range{Xmin: 0, Xmax: 10, Ymin: 0, Ymax: 10}}
		Expect(m.X(-0.5)).To(Equal(0))
		Expect(m.X(-3)).To(BeNumerically("<", 0))
	})

	It("maps degenerate axes without dividing by zero", func() {
		m := Mapper{Width: 10, Height: 10, Range: Range{Xmin: 5, Xmax: 5, Ymin: 2, Ymax: 2}}
		Expect(m.X(5)).To(Equal(0))
		Expect(m.X(123)).To(Equal(0))
		Expect(m.Y(-8)).To(Equal(9))
	})

	It("turns NaN and infinities into off-surface pixels", func() {
		m := Mapper{Width: 10, Height: 10, Range: DefaultRange(10, 10)}
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e300} {
			x, y := m.Map(v, v)
			Expect(m.Inside(x, y)).To(BeFalse())
		}
	})
})
