package plot

import (
	"bytes"
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Surface", func() {
	var (
		rec *recorder
		reg *Registry
	)

	BeforeEach(func() {
		rec = &recorder{}
		reg = registryWith("rec", rec)
	})

	open := func(w, h, levels int, opts ...Option) *Surface {
		s, err := Open(w, h, levels, "rec", append(opts, WithRegistry(reg))...)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	Describe("Open", func() {
		It("initialises the driver and sets the identity range", func() {
			var out bytes.Buffer
			s := open(10, 20, 4, WithMag(3), WithOutput(&out), WithForceFlush(true))

			Expect(rec.width).To(Equal(10))
			Expect(rec.height).To(Equal(20))
			Expect(rec.levels).To(Equal(4))
			Expect(rec.opts.Mag).To(Equal(3))
			Expect(rec.opts.Out).To(BeIdenticalTo(&out))
			Expect(rec.opts.ForceFlush).To(BeTrue())
			Expect(s.Range()).To(Equal(Range{Xmin: 0, Xmax: 9, Ymin: 19, Ymax: 0}))
			Expect(s.Driver()).To(Equal("rec"))
		})

		DescribeTable("rejects invalid geometry",
			func(w, h, levels, mag int, want error) {
				_, err := Open(w, h, levels, "rec", WithRegistry(reg), WithMag(mag))
				Expect(err).To(MatchError(want))
			},
			Entry("zero width", 0, 10, 2, 1, ErrInvalidSize),
			Entry("negative height", 10, -1, 2, 1, ErrInvalidSize),
			Entry("one level", 10, 10, 1, 1, ErrInvalidLevels),
			Entry("zero mag", 10, 10, 2, 0, ErrInvalidMag),
		)

		It("wraps driver init failures", func() {
			boom := errors.New("cannot open display")
			rec.initErr = boom
			_, err := Open(10, 10, 2, "rec", WithRegistry(reg))

			var de *DriverError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Op).To(Equal("init"))
			Expect(de.Driver).To(Equal("rec"))
			Expect(err).To(MatchError(boom))
		})

		It("falls back to the default driver for unknown names", func() {
			s, err := Open(4, 4, 2, "vga", WithRegistry(reg))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Driver()).To(Equal("rec"))
		})
	})

	Describe("Point", func() {
		It("forwards mapped, clamped values", func() {
			s := open(10, 10, 4)
			s.Point(0, 0, 1)
			s.Point(9, 9, 99)
			s.Point(5, 5, -7)
			Expect(rec.points()).To(Equal(map[Pixel]int{
				{0, 0}: 1,
				{9, 9}: 3,
				{5, 5}: 0,
			}))
		})

		It("drops points mapping off the surface", func() {
			s := open(10, 10, 4)
			s.Point(-5, 0, 1)
			s.Point(0, 42, 1)
			s.Point(100, 100, 1)
			Expect(rec.calls).To(BeEmpty())
		})

		It("maps degenerate ranges to the xmin column", func() {
			s := open(10, 10, 4)
			s.SetRange(5, 5, 0, 10)
			s.Point(5, 3, 2)
			Expect(rec.calls).To(HaveLen(1))
			Expect(rec.calls[0].args[0]).To(Equal(0))
		})

		It("gives identical mappings after repeating SetRange", func() {
			s := open(64, 48, 4)
			s.SetRange(-2, 2, -1, 1)
			first := s.Mapper()
			s.SetRange(-2, 2, -1, 1)
			Expect(s.Mapper()).To(Equal(first))
			for _, x := range []float64{-2, -0.3, 0, 1.7, 2} {
				Expect(s.Mapper().X(x)).To(Equal(first.X(x)))
			}
		})
	})

	Describe("inversion", func() {
		It("sends (levels-1)-v when enabled", func() {
			for v := 0; v < 8; v++ {
				inv := &recorder{}
				plain := &recorder{}

				si, err := Open(4, 4, 8, "d", WithRegistry(registryWith("d", inv)), WithInverse(true))
				Expect(err).NotTo(HaveOccurred())
				sp, err := Open(4, 4, 8, "d", WithRegistry(registryWith("d", plain)))
				Expect(err).NotTo(HaveOccurred())

				si.Point(1, 2, v)
				sp.Point(1, 2, 7-v)
				Expect(inv.calls).To(Equal(plain.calls))
			}
		})

		It("can be toggled between primitives", func() {
			s := open(4, 4, 2, WithInverse(true))
			s.Point(0, 0, 1)
			s.SetInverse(false)
			s.Point(1, 0, 1)
			Expect(rec.points()).To(Equal(map[Pixel]int{{0, 0}: 0, {1, 0}: 1}))
		})
	})

	Describe("Line", func() {
		It("uses the native primitive when the driver has one", func() {
			lr := &lineRecorder{}
			s, err := Open(10, 10, 2, "l", WithRegistry(registryWith("l", lr)), WithInverse(true))
			Expect(err).NotTo(HaveOccurred())

			s.Line(0, 0, 9, 9, 1)
			Expect(lr.calls).To(Equal([]call{{op: "line", args: [5]int{0, 0, 9, 9, 0}}}))
		})

		It("rasterizes for point-only drivers", func() {
			s := open(10, 10, 2)
			s.Line(0, 0, 5, 0, 1)
			Expect(rec.calls).To(HaveLen(6))
		})

		It("clips a far endpoint without bending the line", func() {
			lr := &lineRecorder{}
			s, err := Open(10, 10, 2, "l", WithRegistry(registryWith("l", lr)))
			Expect(err).NotTo(HaveOccurred())
			s.SetRange(0, 10, 10, 0)

			s.Line(0, 0, 1000, 500, 1)
			Expect(lr.calls).To(Equal([]call{{op: "line", args: [5]int{0, 0, 9, 5, 1}}}))
		})

		It("keeps the slope of a partially off-surface line", func() {
			s := open(10, 10, 2)
			s.SetRange(0, 10, 10, 0)
			s.Line(-1000, -500, 1000, 500, 1)

			pts := rec.points()
			Expect(pts).To(HaveKey(Pixel{8, 4}))
			Expect(pts).NotTo(HaveKey(Pixel{8, 8}))
			for p := range pts {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<", 10))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<", 10))
				Expect(p.Y).To(BeNumerically("~", p.X/2, 1))
			}
		})

		It("draws nothing for a segment entirely off the surface", func() {
			s := open(10, 10, 2)
			s.Line(-50, 3, -5, 40, 1)
			s.Line(20, 20, 30, 30, 1)
			s.Line(math.NaN(), 0, 5, 5, 1)
			Expect(rec.calls).To(BeEmpty())
		})
	})

	Describe("SetAll", func() {
		It("draws one full-width line per row", func() {
			lr := &lineRecorder{}
			s, err := Open(6, 3, 4, "l", WithRegistry(registryWith("l", lr)))
			Expect(err).NotTo(HaveOccurred())

			s.SetAll(2)
			Expect(lr.calls).To(Equal([]call{
				{op: "line", args: [5]int{0, 0, 5, 0, 2}},
				{op: "line", args: [5]int{0, 1, 5, 1, 2}},
				{op: "line", args: [5]int{0, 2, 5, 2, 2}},
			}))
		})

		It("covers every pixel of a point-only driver", func() {
			s := open(7, 5, 2)
			s.SetAll(1)
			Expect(rec.points()).To(HaveLen(35))
		})
	})

	Describe("Box", func() {
		It("frames the box with a dark ring of the requested width", func() {
			s := open(10, 10, 4)
			s.Box(2, 2, 7, 7, 1)

			pts := rec.points()
			minX, minY, maxX, maxY := 10, 10, -1, -1
			for p := range pts {
				minX, maxX = min(minX, p.X), max(maxX, p.X)
				minY, maxY = min(minY, p.Y), max(maxY, p.Y)
			}
			Expect([]int{minX, minY, maxX, maxY}).To(Equal([]int{1, 1, 8, 8}))

			Expect(pts[Pixel{2, 2}]).To(Equal(3))
			Expect(pts[Pixel{7, 5}]).To(Equal(3))
			Expect(pts[Pixel{1, 1}]).To(Equal(0))
			Expect(pts[Pixel{8, 4}]).To(Equal(0))
			Expect(pts).NotTo(HaveKey(Pixel{4, 4}))
		})

		It("inverts both frame colours", func() {
			s := open(10, 10, 4, WithInverse(true))
			s.Box(2, 2, 7, 7, 2)
			pts := rec.points()
			Expect(pts[Pixel{2, 2}]).To(Equal(0))
			Expect(pts[Pixel{0, 0}]).To(Equal(3))
		})

		It("clips rings that fall off the surface", func() {
			s := open(10, 10, 4)
			s.Box(1, 1, 8, 8, 3)
			pts := rec.points()
			for p := range pts {
				Expect(s.Mapper().Inside(p.X, p.Y)).To(BeTrue())
			}
			Expect(pts[Pixel{0, 0}]).To(Equal(0))
			Expect(pts[Pixel{9, 5}]).To(Equal(0))
		})
	})

	Describe("Finish", func() {
		It("calls the driver once and ignores later drawing", func() {
			s := open(4, 4, 2)
			Expect(s.Finish()).To(Succeed())
			Expect(s.Finish()).To(MatchError(ErrFinished))
			s.Point(0, 0, 1)
			s.SetAll(1)
			Expect(rec.finished).To(Equal(1))
			Expect(rec.calls).To(BeEmpty())
		})

		It("wraps driver finish failures", func() {
			rec.finishErr = errors.New("broken pipe")
			s := open(4, 4, 2)
			err := s.Finish()
			Expect(err).To(MatchError(rec.finishErr))
			var de *DriverError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Op).To(Equal("finish"))
		})
	})

	Describe("Run", func() {
		It("draws and finishes on plain drivers", func() {
			s := open(4, 4, 2)
			Expect(s.Run(context.Background(), func(_ context.Context, s *Surface) error {
				s.Point(1, 1, 1)
				return nil
			})).To(Succeed())
			Expect(rec.finished).To(Equal(1))
			Expect(rec.points()).To(HaveKeyWithValue(Pixel{1, 1}, 1))
		})

		It("hands the draw routine to looping drivers", func() {
			lp := &looperRecorder{}
			s, err := Open(4, 4, 2, "loop", WithRegistry(registryWith("loop", lp)))
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Run(context.Background(), func(_ context.Context, s *Surface) error {
				s.Point(2, 2, 1)
				return nil
			})).To(Succeed())
			Expect(lp.loops).To(Equal(1))
			Expect(lp.finished).To(Equal(1))
			Expect(lp.points()).To(HaveKey(Pixel{2, 2}))
		})

		It("reports draw errors and still finishes", func() {
			boom := errors.New("diverged")
			s := open(4, 4, 2)
			Expect(s.Run(context.Background(), func(context.Context, *Surface) error { return boom })).To(MatchError(boom))
			Expect(rec.finished).To(Equal(1))
		})

		It("passes the caller's context to the draw routine", func() {
			s := open(4, 4, 2)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := s.Run(ctx, func(ctx context.Context, _ *Surface) error {
				return ctx.Err()
			})
			Expect(err).To(MatchError(context.Canceled))
			Expect(rec.finished).To(Equal(1))
		})
	})
})
