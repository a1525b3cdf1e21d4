package export

import (
	"bytes"
	"encoding/xml"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotlab/internal/palette"
)

var _ = Describe("SVG", func() {
	It("emits a well-formed document", func() {
		var out bytes.Buffer
		s, err := NewSVG(&out, 4, 3, 2, 2, palette.Mono())
		Expect(err).NotTo(HaveOccurred())
		s.Point(1, 1, 1)
		s.Line(0, 0, 3, 2, 1)
		Expect(s.Close()).To(Succeed())

		dec := xml.NewDecoder(&out)
		var names []string
		for {
			tok, err := dec.Token()
			if err == io.EOF {
				break
			}
			Expect(err).NotTo(HaveOccurred())
			if se, ok := tok.(xml.StartElement); ok {
				names = append(names, se.Name.Local)
			}
		}
		Expect(names).To(Equal([]string{"svg", "rect", "rect", "line"}))
	})

	It("colours elements from the palette", func() {
		var out bytes.Buffer
		s, err := NewSVG(&out, 4, 4, 1, 2, palette.Mono())
		Expect(err).NotTo(HaveOccurred())
		s.Point(2, 3, 1)
		Expect(s.Close()).To(Succeed())

		Expect(out.String()).To(ContainSubstring(`fill="#000000"`))
		Expect(out.String()).To(ContainSubstring(`<rect x="2" y="3" width="1" height="1" fill="#ffffff"/>`))
	})
})
