package export

import (
	"image/color"
	"image/gif"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/san-kum/plotlab/internal/raster"
)

// WriteBMP encodes the buffer as a paletted BMP.
func WriteBMP(w io.Writer, b *raster.Buffer, pal color.Palette, levels int) error {
	return bmp.Encode(w, b.Paletted(pal, levels))
}

// WriteTIFF encodes the buffer as a deflate-compressed paletted TIFF.
func WriteTIFF(w io.Writer, b *raster.Buffer, pal color.Palette, levels int) error {
	return tiff.Encode(w, b.Paletted(pal, levels), &tiff.Options{
		Compression: tiff.Deflate,
	})
}

// WriteGIF encodes the buffer as a single-frame GIF.
func WriteGIF(w io.Writer, b *raster.Buffer, pal color.Palette, levels int) error {
	return gif.Encode(w, b.Paletted(pal, levels), &gif.Options{NumColors: len(pal)})
}
