// Package export encodes rendered surfaces into the file formats the file
// drivers emit.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/plotlab/internal/raster"
)

// MaxGray is the largest level count a PGM stream can carry in one byte.
const MaxGray = 256

// WritePGM writes a binary portable graymap: the P5 magic, the magnified
// dimensions, the maximum value levels-1, then one byte per pixel in
// row-major order. Level values are written unscaled.
func WritePGM(w io.Writer, b *raster.Buffer, levels int) error {
	levels = min(levels, MaxGray)
	bw := bufio.NewWriter(w)

	width, height := b.Width*b.Mag, b.Height*b.Mag
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n%d\n", width, height, levels-1); err != nil {
		return err
	}

	line := make([]byte, width)
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x, v := range row {
			for dx := 0; dx < b.Mag; dx++ {
				line[x*b.Mag+dx] = v
			}
		}
		for dy := 0; dy < b.Mag; dy++ {
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteRaw writes one "x y value" line per logical pixel, row-major.
func WriteRaw(w io.Writer, b *raster.Buffer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for y := 0; y < b.Height; y++ {
		for x, v := range b.Row(y) {
			buf = buf[:0]
			buf = strconv.AppendInt(buf, int64(x), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(y), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
