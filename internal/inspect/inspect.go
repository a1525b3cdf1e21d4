// Package inspect reads rendered images back and summarises their level
// distribution.
package inspect

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"
	"math"
	"strconv"

	"github.com/guptarohit/asciigraph"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var ErrBadPNM = errors.New("inspect: malformed pnm")

// Image is a grayscale image with integer samples in [0, MaxVal].
type Image struct {
	Width, Height int
	MaxVal        int
	Pix           []int
}

func (m *Image) At(x, y int) int {
	return m.Pix[y*m.Width+x]
}

// Read decodes a PGM (P5 or P2) or any registered image format. Colour
// images are reduced to 8-bit luminance.
func Read(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		return nil, err
	}
	if magic[0] == 'P' && (magic[1] == '5' || magic[1] == '2') {
		return ReadPGM(br)
	}

	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}
	b := img.Bounds()
	out := &Image{Width: b.Dx(), Height: b.Dy(), MaxVal: 255, Pix: make([]int, b.Dx()*b.Dy())}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.Pix[(y-b.Min.Y)*out.Width+(x-b.Min.X)] = int(g.Y)
		}
	}
	return out, nil
}

// ReadPGM decodes a binary (P5) or plain (P2) graymap. Header comments are
// skipped. Binary samples are two bytes wide when MaxVal exceeds 255.
func ReadPGM(r io.Reader) (*Image, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	magic, err := token(br)
	if err != nil {
		return nil, err
	}
	if magic != "P5" && magic != "P2" {
		return nil, fmt.Errorf("%w: magic %q", ErrBadPNM, magic)
	}

	var dims [3]int
	for i := range dims {
		tok, err := token(br)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: header field %q", ErrBadPNM, tok)
		}
		dims[i] = n
	}
	m := &Image{Width: dims[0], Height: dims[1], MaxVal: dims[2]}
	if m.MaxVal > 65535 {
		return nil, fmt.Errorf("%w: maxval %d", ErrBadPNM, m.MaxVal)
	}
	m.Pix = make([]int, m.Width*m.Height)

	if magic == "P2" {
		for i := range m.Pix {
			tok, err := token(br)
			if err != nil {
				return nil, fmt.Errorf("%w: sample %d: %v", ErrBadPNM, i, err)
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: sample %q", ErrBadPNM, tok)
			}
			m.Pix[i] = v
		}
		return m, nil
	}

	// One whitespace byte separates the header from the raster; token
	// consumed it already.
	width := 1
	if m.MaxVal > 255 {
		width = 2
	}
	data := make([]byte, len(m.Pix)*width)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, fmt.Errorf("%w: raster: %v", ErrBadPNM, err)
	}
	for i := range m.Pix {
		if width == 2 {
			m.Pix[i] = int(data[2*i])<<8 | int(data[2*i+1])
		} else {
			m.Pix[i] = int(data[i])
		}
	}
	return m, nil
}

// token returns the next whitespace-delimited header word, skipping
// comments, and consumes the single delimiter after it.
func token(br *bufio.Reader) (string, error) {
	var buf bytes.Buffer
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && buf.Len() > 0 {
				return buf.String(), nil
			}
			return "", err
		}
		switch {
		case c == '#' && buf.Len() == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case isSpace(c):
			if buf.Len() > 0 {
				return buf.String(), nil
			}
		default:
			buf.WriteByte(c)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// Stats summarises the samples of an image.
type Stats struct {
	Min, Max int
	Mean     float64
	Distinct int
}

func Summarize(m *Image) Stats {
	if len(m.Pix) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.MaxInt, Max: math.MinInt}
	seen := make(map[int]struct{})
	var sum float64
	for _, v := range m.Pix {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += float64(v)
		seen[v] = struct{}{}
	}
	s.Mean = sum / float64(len(m.Pix))
	s.Distinct = len(seen)
	return s
}

// Histogram counts samples into bins equal-width buckets over [0, MaxVal].
func Histogram(m *Image, bins int) []int {
	bins = max(bins, 1)
	hist := make([]int, bins)
	for _, v := range m.Pix {
		b := v * bins / (m.MaxVal + 1)
		hist[min(max(b, 0), bins-1)]++
	}
	return hist
}

// Plot renders a histogram as an ASCII chart.
func Plot(hist []int, height int, caption string) string {
	data := make([]float64, len(hist))
	for i, n := range hist {
		data[i] = float64(n)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(max(len(data), 16)),
		asciigraph.Caption(caption),
	)
}
