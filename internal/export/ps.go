package export

import (
	"bufio"
	"fmt"
	"io"
	"text/template"
)

const psPrologue = `%!PS-Adobe-2.0 EPSF-2.0
%%Creator: plotlab
%%DocumentFonts: 
%%BoundingBox: 0 0 {{.Width}} {{.Height}}
%%EndComments
/gnudict 40 dict def
gnudict begin
/gnulinewidth {{.LineWidth}} def
/M {moveto} bind def
/L {lineto} bind def
/V {rlineto} bind def
/P { stroke [] 0 setdash
  currentlinewidth 2 div sub M
  0 currentlinewidth V stroke } def
/dl {10 mul} def
/AL { stroke gnulinewidth 2 div setlinewidth } def
end
%%EndProlog
gnudict begin
gsave
newpath
`

const psEpilogue = "stroke\ngrestore\nend\nshowpage\n%%Trailer\n"

var psTemplate = template.Must(template.New("PostScriptPrologue").Parse(psPrologue))

// PostScript streams an EPS document. Device y grows upward, so rows are
// flipped against the surface height. Consecutive segments that share an
// endpoint are joined without a new moveto.
type PostScript struct {
	w      *bufio.Writer
	height int
	mag    int
	lastX  int
	lastY  int
	err    error
}

// NewPostScript writes the prologue for a width x height surface, scaled by
// mag, and returns the stream.
func NewPostScript(w io.Writer, width, height, mag int) (*PostScript, error) {
	if mag < 1 {
		mag = 1
	}
	ps := &PostScript{
		w:      bufio.NewWriter(w),
		height: height,
		mag:    mag,
		lastX:  -1,
		lastY:  -1,
	}
	err := psTemplate.Execute(ps.w, struct {
		Width, Height int
		LineWidth     string
	}{width * mag, height * mag, fmt.Sprintf("%.3f", float64(mag))})
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// Point emits a dot at pixel (x, y) and forgets the current path end.
func (ps *PostScript) Point(x, y int) {
	ps.printf("%d %d P\n", x*ps.mag, (ps.height-y)*ps.mag)
	ps.lastX, ps.lastY = -1, -1
}

// Line emits a segment, omitting the moveto when (x1, y1) is where the
// previous segment ended.
func (ps *PostScript) Line(x1, y1, x2, y2 int) {
	if ps.lastX != x1 || ps.lastY != y1 {
		ps.printf("%d %d M\n", x1*ps.mag, (ps.height-y1)*ps.mag)
	}
	ps.printf("%d %d L\n", x2*ps.mag, (ps.height-y2)*ps.mag)
	ps.lastX, ps.lastY = x2, y2
}

// Close writes the trailer and flushes. It reports the first write error.
func (ps *PostScript) Close() error {
	ps.printf("%s", psEpilogue)
	if ps.err != nil {
		return ps.err
	}
	return ps.w.Flush()
}

func (ps *PostScript) printf(format string, args ...any) {
	if ps.err != nil {
		return
	}
	_, ps.err = fmt.Fprintf(ps.w, format, args...)
}
