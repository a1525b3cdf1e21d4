package export

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotlab/internal/raster"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

var _ = Describe("WritePGM", func() {
	It("writes the header and one byte per pixel", func() {
		b := raster.New(10, 10, 1)
		b.Set(0, 0, 1)
		var out bytes.Buffer
		Expect(WritePGM(&out, b, 2)).To(Succeed())

		header := "P5\n10 10\n1\n"
		Expect(out.String()).To(HavePrefix(header))
		body := out.Bytes()[len(header):]
		Expect(body).To(HaveLen(100))
		Expect(body[0]).To(Equal(byte(1)))
		Expect(bytes.Count(body[1:], []byte{0})).To(Equal(99))
	})

	It("caps the maximum value at 255", func() {
		var out bytes.Buffer
		Expect(WritePGM(&out, raster.New(1, 1, 1), 1000)).To(Succeed())
		Expect(out.String()).To(HavePrefix("P5\n1 1\n255\n"))
	})

	It("replicates pixels by the magnification factor", func() {
		b := raster.New(2, 1, 2)
		b.Set(1, 0, 3)
		var out bytes.Buffer
		Expect(WritePGM(&out, b, 4)).To(Succeed())

		header := "P5\n4 2\n3\n"
		Expect(out.String()).To(HavePrefix(header))
		Expect(out.Bytes()[len(header):]).To(Equal([]byte{0, 0, 3, 3, 0, 0, 3, 3}))
	})

	It("reports write failures", func() {
		Expect(WritePGM(failWriter{}, raster.New(4, 4, 1), 2)).NotTo(Succeed())
	})
})

var _ = Describe("WriteRaw", func() {
	It("writes one triplet per pixel in row-major order", func() {
		b := raster.New(2, 2, 1)
		b.Set(1, 0, 5)
		b.Set(0, 1, 7)
		var out bytes.Buffer
		Expect(WriteRaw(&out, b)).To(Succeed())
		Expect(out.String()).To(Equal("0 0 0\n1 0 5\n0 1 7\n1 1 0\n"))
	})
})
