// Package raster holds the in-memory pixel store shared by the raster
// drivers.
package raster

import (
	"image"
	"image/color"

	"github.com/san-kum/plotlab/internal/palette"
)

// Buffer is a width x height grid of level values. Mag is applied only when
// the buffer is converted to an image.
type Buffer struct {
	Width, Height int
	Mag           int
	Pix           []uint8
}

// New allocates a zeroed buffer. A mag below one is treated as one.
func New(width, height, mag int) *Buffer {
	if mag < 1 {
		mag = 1
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Mag:    mag,
		Pix:    make([]uint8, width*height),
	}
}

// Set stores v at (x, y), clamped to [0, 255]. Coordinates off the grid are
// ignored.
func (b *Buffer) Set(x, y, v int) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = level(v)
}

// At returns the value at (x, y), or 0 off the grid.
func (b *Buffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Fill sets every pixel to v, clamped like Set.
func (b *Buffer) Fill(v int) {
	c := level(v)
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

func level(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// Row returns row y as a slice aliasing the buffer.
func (b *Buffer) Row(y int) []uint8 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// Bounds is the magnified image rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width*b.Mag, b.Height*b.Mag)
}

// Paletted renders the buffer through pal, replicating each pixel into a
// Mag x Mag block.
func (b *Buffer) Paletted(pal color.Palette, levels int) *image.Paletted {
	img := image.NewPaletted(b.Bounds(), pal)
	n := len(pal)
	b.each(func(x, y int, v uint8) {
		idx := uint8(palette.Index(int(v), levels, n))
		for dy := 0; dy < b.Mag; dy++ {
			off := img.PixOffset(x*b.Mag, y*b.Mag+dy)
			for dx := 0; dx < b.Mag; dx++ {
				img.Pix[off+dx] = idx
			}
		}
	})
	return img
}

// Gray renders the buffer as an 8-bit grayscale image with the levels
// stretched over the full 0-255 range.
func (b *Buffer) Gray(levels int) *image.Gray {
	img := image.NewGray(b.Bounds())
	b.each(func(x, y int, v uint8) {
		g := uint8(palette.Index(int(v), levels, 256))
		for dy := 0; dy < b.Mag; dy++ {
			off := img.PixOffset(x*b.Mag, y*b.Mag+dy)
			for dx := 0; dx < b.Mag; dx++ {
				img.Pix[off+dx] = g
			}
		}
	})
	return img
}

// RGBA fills buf (4 bytes per magnified pixel) from the palette. Used by
// drivers that upload pixels to a display surface.
func (b *Buffer) RGBA(buf []byte, pal color.Palette, levels int) {
	stride := b.Width * b.Mag * 4
	n := len(pal)
	b.each(func(x, y int, v uint8) {
		r, g, bl, a := pal[palette.Index(int(v), levels, n)].RGBA()
		for dy := 0; dy < b.Mag; dy++ {
			base := (y*b.Mag+dy)*stride + x*b.Mag*4
			for dx := 0; dx < b.Mag; dx++ {
				p := base + dx*4
				buf[p+0] = uint8(r >> 8)
				buf[p+1] = uint8(g >> 8)
				buf[p+2] = uint8(bl >> 8)
				buf[p+3] = uint8(a >> 8)
			}
		}
	})
}

func (b *Buffer) each(fn func(x, y int, v uint8)) {
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x, v := range row {
			fn(x, y, v)
		}
	}
}
