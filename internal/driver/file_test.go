package driver

import (
	"bytes"
	"context"
	"encoding/xml"
	"image"
	"image/gif"
	"image/png"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/san-kum/plotlab/internal/plot"
)

func testRegistry() *plot.Registry {
	r := plot.NewRegistry()
	RegisterAll(r)
	return r
}

func open(name string, w, h, levels int, out io.Writer, opts ...plot.Option) *plot.Surface {
	opts = append([]plot.Option{plot.WithRegistry(testRegistry()), plot.WithOutput(out)}, opts...)
	s, err := plot.Open(w, h, levels, name, opts...)
	Expect(err).NotTo(HaveOccurred())
	Expect(s.Driver()).To(Equal(name))
	return s
}

var _ = Describe("file drivers", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	Describe("pgm", func() {
		It("writes a cleared surface with one lit pixel", func() {
			s := open("pgm", 10, 10, 2, out)
			s.SetAll(0)
			s.Point(0, 0, 1)
			Expect(s.Finish()).To(Succeed())

			header := "P5\n10 10\n1\n"
			Expect(out.String()).To(HavePrefix(header))
			body := out.Bytes()[len(header):]
			Expect(body).To(HaveLen(100))
			Expect(body[0]).To(Equal(byte(1)))
			Expect(bytes.Count(body, []byte{0})).To(Equal(99))
		})

		It("rasterizes lines and honours inversion", func() {
			s := open("pgm", 4, 4, 4, out, plot.WithInverse(true))
			s.SetAll(3)
			s.Line(0, 0, 3, 3, 0)
			Expect(s.Finish()).To(Succeed())

			body := out.Bytes()[len("P5\n4 4\n3\n"):]
			for i := 0; i < 4; i++ {
				Expect(body[i*4+i]).To(Equal(byte(3)))
			}
			Expect(body[1]).To(Equal(byte(0)))
		})

		It("magnifies the declared size", func() {
			s := open("pgm", 3, 2, 2, out, plot.WithMag(2))
			Expect(s.Finish()).To(Succeed())
			Expect(out.String()).To(HavePrefix("P5\n6 4\n1\n"))
			Expect(out.Len()).To(Equal(len("P5\n6 4\n1\n") + 24))
		})
	})

	It("raw writes one triplet per pixel", func() {
		s := open("raw", 2, 2, 8, out)
		s.Point(1, 1, 5)
		Expect(s.Finish()).To(Succeed())
		Expect(out.String()).To(Equal("0 0 0\n1 0 0\n0 1 0\n1 1 5\n"))
	})

	It("ps streams native segments", func() {
		s := open("ps", 100, 100, 2, out)
		s.Line(0, 0, 10, 0, 1)
		s.Line(10, 0, 10, 10, 1)
		s.Point(50, 50, 1)
		Expect(s.Finish()).To(Succeed())

		// Rows grow downward on the surface and upward on the page.
		Expect(out.String()).To(ContainSubstring("0 100 M\n10 100 L\n10 90 L\n50 50 P\n"))
		Expect(out.String()).To(HaveSuffix("%%Trailer\n"))
	})

	It("svg emits a closed document", func() {
		s := open("svg", 8, 8, 2, out)
		s.Box(2, 2, 5, 5, 1)
		Expect(s.Finish()).To(Succeed())

		Expect(xml.Unmarshal(out.Bytes(), new(struct {
			XMLName xml.Name `xml:"svg"`
		}))).To(Succeed())
		Expect(strings.Count(out.String(), "<line ")).To(Equal(8))
	})

	It("none accepts everything and writes nothing", func() {
		s := open("none", 5, 5, 2, out)
		s.SetAll(1)
		s.Box(1, 1, 3, 3, 2)
		Expect(s.Finish()).To(Succeed())
		Expect(out.Len()).To(BeZero())
	})

	It("braille writes text rows", func() {
		s := open("braille", 4, 8, 2, out)
		s.SetAll(0)
		s.Point(0, 0, 1)
		Expect(s.Finish()).To(Succeed())

		rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		Expect(rows).To(HaveLen(2))
		Expect([]rune(rows[0])[0]).To(Equal(rune(0x2801)))
	})

	DescribeTable("image drivers",
		func(name string, decode func(io.Reader) (image.Image, error)) {
			s := open(name, 6, 4, 2, out, plot.WithMag(2))
			s.SetAll(0)
			s.Point(1, 2, 1)
			Expect(s.Finish()).To(Succeed())

			img, err := decode(bytes.NewReader(out.Bytes()))
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 12, 8)))

			// Logical (1, 2) lands on pixel (1, 2), magnified to (2, 4).
			r, _, _, _ := img.At(2, 4).RGBA()
			Expect(r >> 8).To(BeNumerically(">", 200))
			r, _, _, _ = img.At(10, 6).RGBA()
			Expect(r >> 8).To(BeNumerically("<", 50))
		},
		Entry("bmp", "bmp", bmp.Decode),
		Entry("BMP", "BMP", bmp.Decode),
		Entry("tiff", "tiff", tiff.Decode),
		Entry("gif", "gif", gif.Decode),
		Entry("png", "png", png.Decode),
		Entry("PNG", "PNG", png.Decode),
	)

	It("reports encoder failures from Finish", func() {
		s := open("png", 4, 4, 2, failingWriter{})
		err := s.Finish()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("finish"))
	})

	It("runs draw routines through Surface.Run", func() {
		s := open("pgm", 2, 2, 2, out)
		Expect(s.Run(context.Background(), func(_ context.Context, s *plot.Surface) error {
			s.SetAll(1)
			return nil
		})).To(Succeed())
		Expect(out.Bytes()[len("P5\n2 2\n1\n"):]).To(Equal([]byte{1, 1, 1, 1}))
	})
})

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }
