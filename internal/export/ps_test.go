package export

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PostScript", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("opens with an EPS prologue sized to the surface", func() {
		ps, err := NewPostScript(out, 640, 480, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(ps.Close()).To(Succeed())

		s := out.String()
		Expect(s).To(HavePrefix("%!PS-Adobe-2.0 EPSF-2.0\n%%Creator: plotlab\n%%DocumentFonts: \n"))
		Expect(s).To(ContainSubstring("%%BoundingBox: 0 0 640 480\n"))
		Expect(s).To(ContainSubstring("/gnulinewidth 1.000 def\n"))
		Expect(s).To(ContainSubstring("%%EndProlog\ngnudict begin\ngsave\nnewpath\n"))
		Expect(s).To(HaveSuffix("stroke\ngrestore\nend\nshowpage\n%%Trailer\n"))
	})

	It("flips rows and skips the moveto for connected segments", func() {
		ps, err := NewPostScript(out, 100, 100, 1)
		Expect(err).NotTo(HaveOccurred())
		ps.Line(0, 0, 10, 10)
		ps.Line(10, 10, 20, 0)
		ps.Line(30, 30, 40, 40)
		Expect(ps.Close()).To(Succeed())

		body := out.String()[strings.Index(out.String(), "newpath\n")+len("newpath\n"):]
		Expect(body).To(HavePrefix("0 100 M\n10 90 L\n20 100 L\n30 70 M\n40 60 L\n"))
	})

	It("forgets the path end after a point", func() {
		ps, err := NewPostScript(out, 100, 100, 1)
		Expect(err).NotTo(HaveOccurred())
		ps.Line(0, 0, 10, 10)
		ps.Point(5, 5)
		ps.Line(10, 10, 20, 20)
		Expect(ps.Close()).To(Succeed())

		Expect(out.String()).To(ContainSubstring("10 90 L\n5 95 P\n10 90 M\n20 80 L\n"))
	})

	It("scales coordinates and the bounding box by mag", func() {
		ps, err := NewPostScript(out, 10, 20, 3)
		Expect(err).NotTo(HaveOccurred())
		ps.Point(1, 2)
		Expect(ps.Close()).To(Succeed())

		Expect(out.String()).To(ContainSubstring("%%BoundingBox: 0 0 30 60\n"))
		Expect(out.String()).To(ContainSubstring("3 54 P\n"))
	})
})
