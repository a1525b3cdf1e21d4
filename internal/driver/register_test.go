package driver

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotlab/internal/plot"
)

var _ = Describe("registration", func() {
	It("registers every backend name", func() {
		names := testRegistry().Names()
		for _, n := range []string{
			"none", "pgm", "raw", "ps", "svg", "Svg", "png", "PNG",
			"bmp", "BMP", "tiff", "TIFF", "gif", "GIF", "braille",
			"term", "Term", "window", "Window", "x11", "X11",
			"win", "Win", "mac", "Mac",
		} {
			Expect(names).To(ContainElement(n))
			Expect(Description(n)).NotTo(BeEmpty())
		}
	})

	It("defaults to pgm when no interactive display is available", func() {
		if TermAvailable() || WindowAvailable() {
			Skip("interactive display present")
		}
		e, err := testRegistry().Default()
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal("pgm"))
	})

	It("prefers pgm over the other file formats", func() {
		r := testRegistry()
		for _, n := range []string{"term", "Term", "window", "Window", "x11", "X11", "win", "Win", "mac", "Mac"} {
			r.Unregister(n)
		}
		e, err := r.Default()
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal("pgm"))
		Expect(r.Available()[len(r.Available())-1]).To(Equal("none"))
	})

	It("falls back to the default for unknown names", func() {
		r := testRegistry()
		want, err := r.Default()
		Expect(err).NotTo(HaveOccurred())
		got, err := r.Resolve("plotter9000")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal(want.Name))
	})

	It("refuses window names without display support", func() {
		if windowBuilt && WindowAvailable() {
			Skip("window support present")
		}
		_, err := plot.Open(10, 10, 2, "X11",
			plot.WithRegistry(testRegistry()),
			plot.WithOutput(&bytes.Buffer{}))
		Expect(errors.Is(err, plot.ErrUnavailable)).To(BeTrue())
	})
})
