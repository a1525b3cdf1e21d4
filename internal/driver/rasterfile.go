package driver

import (
	"image/color"
	"io"

	"github.com/san-kum/plotlab/internal/export"
	"github.com/san-kum/plotlab/internal/palette"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/raster"
)

// encoder writes a finished buffer to the output stream.
type encoder func(w io.Writer, b *raster.Buffer, pal color.Palette, levels int) error

// RasterFile accumulates pixels in memory and encodes the whole image when
// the surface finishes. It has no native line primitive.
type RasterFile struct {
	format string
	hue    bool
	encode encoder

	buf    *raster.Buffer
	levels int
	out    io.Writer
}

func newRasterFile(format string, hue bool, enc encoder) *RasterFile {
	return &RasterFile{format: format, hue: hue, encode: enc}
}

// NewPGM returns the binary graymap driver.
func NewPGM() *RasterFile {
	return newRasterFile("pgm", false, func(w io.Writer, b *raster.Buffer, _ color.Palette, levels int) error {
		return export.WritePGM(w, b, levels)
	})
}

// NewRaw returns the "x y value" text driver.
func NewRaw() *RasterFile {
	return newRasterFile("raw", false, func(w io.Writer, b *raster.Buffer, _ color.Palette, _ int) error {
		return export.WriteRaw(w, b)
	})
}

// NewBMP returns the BMP driver.
func NewBMP(hue bool) *RasterFile { return newRasterFile("bmp", hue, export.WriteBMP) }

// NewTIFF returns the TIFF driver.
func NewTIFF(hue bool) *RasterFile { return newRasterFile("tiff", hue, export.WriteTIFF) }

// NewGIF returns the GIF driver.
func NewGIF(hue bool) *RasterFile { return newRasterFile("gif", hue, export.WriteGIF) }

func (d *RasterFile) Init(width, height, levels int, opts plot.Options) error {
	if d.format == "pgm" && levels > export.MaxGray {
		logger(opts).Warn("pgm holds at most 256 levels, higher values are clamped to 255",
			"levels", levels)
	}
	d.buf = raster.New(width, height, opts.Mag)
	d.levels = levels
	d.out = opts.Out
	return nil
}

func (d *RasterFile) Point(x, y, v int) {
	d.buf.Set(x, y, v)
}

func (d *RasterFile) Finish() error {
	return d.encode(d.out, d.buf, palette.For(d.levels, d.hue), d.levels)
}

// Buffer exposes the accumulated pixels.
func (d *RasterFile) Buffer() *raster.Buffer { return d.buf }
