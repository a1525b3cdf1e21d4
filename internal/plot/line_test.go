package plot

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LinePoints", func() {
	It("walks a horizontal segment without gaps", func() {
		pts := LinePoints(0, 0, 5, 0)
		Expect(pts).To(HaveLen(6))
		for i, p := range pts {
			Expect(p).To(Equal(Pixel{X: i, Y: 0}))
		}
	})

	It("draws a single point for identical endpoints", func() {
		Expect(LinePoints(3, 4, 3, 4)).To(Equal([]Pixel{{3, 4}}))
	})

	DescribeTable("includes both endpoints and steps at most one pixel",
		func(x1, y1, x2, y2 int) {
			pts := LinePoints(x1, y1, x2, y2)
			Expect(pts[0]).To(Equal(Pixel{x1, y1}))
			Expect(pts[len(pts)-1]).To(Equal(Pixel{x2, y2}))
			Expect(pts).To(HaveLen(max(absInt(x2-x1), absInt(y2-y1)) + 1))
			for i := 1; i < len(pts); i++ {
				Expect(absInt(pts[i].X - pts[i-1].X)).To(BeNumerically("<=", 1))
				Expect(absInt(pts[i].Y - pts[i-1].Y)).To(BeNumerically("<=", 1))
			}
		},
		Entry("vertical", 2, 9, 2, 0),
		Entry("diagonal", 0, 0, 7, 7),
		Entry("steep", 1, 1, 3, 12),
		Entry("shallow reversed", 20, 3, -4, 0),
		Entry("negative quadrant", -3, -3, -1, -8),
	)

	It("feeds every pixel to the point primitive", func() {
		var got []Pixel
		DrawLine(func(x, y, v int) {
			Expect(v).To(Equal(7))
			got = append(got, Pixel{x, y})
		}, 0, 0, 0, 3, 7)
		Expect(got).To(Equal([]Pixel{{0, 0}, {0, 1}, {0, 2}, {0, 3}}))
	})
})
