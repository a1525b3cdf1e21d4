package plot

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
)

// Option configures a Surface at Open time.
type Option func(*settings)

type settings struct {
	mag        int
	inverse    bool
	out        io.Writer
	forceFlush bool
	registry   *Registry
	logger     *slog.Logger
}

// WithMag sets the magnification factor (pixel replication).
func WithMag(n int) Option {
	return func(s *settings) { s.mag = n }
}

// WithInverse enables colour inversion.
func WithInverse(on bool) Option {
	return func(s *settings) { s.inverse = on }
}

// WithOutput sets the stream file drivers write to. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithForceFlush asks interactive drivers to refresh after every primitive.
func WithForceFlush(on bool) Option {
	return func(s *settings) { s.forceFlush = on }
}

// WithRegistry resolves the driver from r instead of the process-wide one.
func WithRegistry(r *Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithLogger overrides the process-wide logger for one surface.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// Surface is the active rendering target: geometry, logical range, colour
// settings and the bound driver.
type Surface struct {
	width, height int
	levels        int
	mag           int
	inverse       bool
	mapper        Mapper
	drv           *binding
	log           *slog.Logger
	finished      bool
}

// Open resolves the named driver, initialises it and returns a surface with
// the identity range. An empty or unknown name selects the default driver.
func Open(width, height, levels int, name string, opts ...Option) (*Surface, error) {
	cfg := settings{mag: 1, out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = defaultRegistry
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}

	switch {
	case width < 1 || height < 1:
		return nil, ErrInvalidSize
	case levels < 2:
		return nil, ErrInvalidLevels
	case cfg.mag < 1:
		return nil, ErrInvalidMag
	}

	entry, err := cfg.registry.Resolve(name)
	if err != nil {
		return nil, err
	}

	d := entry.Factory()
	err = d.Init(width, height, levels, Options{
		Mag:        cfg.mag,
		Out:        cfg.out,
		ForceFlush: cfg.forceFlush,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, &DriverError{Driver: entry.Name, Op: "init", Err: err}
	}

	cfg.logger.Debug("surface opened",
		"driver", entry.Name,
		"width", width,
		"height", height,
		"levels", levels,
		"mag", cfg.mag)

	return &Surface{
		width:   width,
		height:  height,
		levels:  levels,
		mag:     cfg.mag,
		inverse: cfg.inverse,
		mapper: Mapper{
			Width:  width,
			Height: height,
			Range:  DefaultRange(width, height),
		},
		drv: bind(entry.Name, d),
		log: cfg.logger,
	}, nil
}

func (s *Surface) Width() int        { return s.width }
func (s *Surface) Height() int       { return s.height }
func (s *Surface) Levels() int       { return s.levels }
func (s *Surface) Mag() int          { return s.mag }
func (s *Surface) Inverse() bool     { return s.inverse }
func (s *Surface) Driver() string    { return s.drv.name }
func (s *Surface) Range() Range      { return s.mapper.Range }
func (s *Surface) Mapper() Mapper    { return s.mapper }
func (s *Surface) SetInverse(b bool) { s.inverse = b }

// SetRange redefines the logical window used by subsequent drawing calls.
// Already drawn pixels are unaffected.
func (s *Surface) SetRange(xmin, xmax, ymin, ymax float64) {
	s.mapper.Range = Range{Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax}
}

// color clamps v into the level range and applies inversion.
func (s *Surface) color(v int) int {
	if v < 0 {
		v = 0
	} else if v > s.levels-1 {
		v = s.levels - 1
	}
	if s.inverse {
		return s.levels - 1 - v
	}
	return v
}

// Point plots a logical point. Points mapping outside the surface are
// dropped silently.
func (s *Surface) Point(x, y float64, v int) {
	if s.finished {
		return
	}
	px, py := s.mapper.Map(x, y)
	if !s.mapper.Inside(px, py) {
		return
	}
	s.drv.point(px, py, s.color(v))
}

// Line draws a logical segment. The part of the segment off the surface is
// clipped away; a segment entirely off the surface draws nothing.
func (s *Surface) Line(x1, y1, x2, y2 float64, v int) {
	if s.finished {
		return
	}
	ax, ay, bx, by, ok := s.mapper.Segment(x1, y1, x2, y2)
	if !ok {
		return
	}
	s.drv.line(ax, ay, bx, by, s.color(v))
}

// SetAll fills the surface with one level by drawing a full-width line per
// row, so no driver needs a clear primitive of its own.
func (s *Surface) SetAll(v int) {
	if s.finished {
		return
	}
	c := s.color(v)
	for row := 0; row < s.height; row++ {
		s.drv.line(0, row, s.width-1, row, c)
	}
}

// Box frames the logical rectangle (ulx, uly)-(lrx, lry). The rectangle
// itself is drawn in the lightest level and surrounded by lineWidth rings of
// the darkest level, so the frame stays visible on any background.
func (s *Surface) Box(ulx, uly, lrx, lry float64, lineWidth int) {
	if s.finished {
		return
	}
	x0, y0 := s.mapper.Map(ulx, uly)
	x1, y1 := s.mapper.Map(lrx, lry)

	s.rect(x0, y0, x1, y1, s.color(s.levels-1))
	dark := s.color(0)
	for i := 1; i <= lineWidth; i++ {
		s.rect(x0-i, y0-i, x1+i, y1+i, dark)
	}
}

func (s *Surface) rect(x0, y0, x1, y1, c int) {
	s.edge(x0, y0, x1, y0, c)
	s.edge(x1, y0, x1, y1, c)
	s.edge(x1, y1, x0, y1, c)
	s.edge(x0, y1, x0, y0, c)
}

// edge draws a pixel-space segment clipped to the surface.
func (s *Surface) edge(x0, y0, x1, y1, c int) {
	fx0, fy0, fx1, fy1, ok := clip(float64(x0), float64(y0), float64(x1), float64(y1),
		float64(s.width-1), float64(s.height-1))
	if !ok {
		return
	}
	s.drv.line(int(math.Round(fx0)), int(math.Round(fy0)),
		int(math.Round(fx1)), int(math.Round(fy1)), c)
}

// Finish hands control to the driver's finish primitive, which may flush a
// stream or block until the user dismisses a window.
func (s *Surface) Finish() error {
	if s.finished {
		return ErrFinished
	}
	s.finished = true
	if err := s.drv.driver.Finish(); err != nil {
		return &DriverError{Driver: s.drv.name, Op: "finish", Err: err}
	}
	s.log.Debug("surface finished", "driver", s.drv.name)
	return nil
}

// Run executes draw against the surface and finishes it. Interactive drivers
// keep the calling goroutine for their display loop while draw runs, and may
// cancel the context handed to draw when the user quits early.
func (s *Surface) Run(ctx context.Context, draw func(context.Context, *Surface) error) error {
	var err error
	if s.drv.looper != nil {
		err = s.drv.looper.Loop(ctx, func(ctx context.Context) error {
			return draw(ctx, s)
		})
	} else {
		err = draw(ctx, s)
	}

	if ferr := s.Finish(); ferr != nil && err == nil {
		return ferr
	}
	return err
}
