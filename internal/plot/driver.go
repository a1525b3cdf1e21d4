package plot

import (
	"context"
	"io"
	"log/slog"
)

// Driver is the minimal capability set of an output backend. Coordinates
// passed to a driver are already in pixel space and values are already
// clamped to [0, levels-1].
type Driver interface {
	Init(width, height, levels int, opts Options) error
	Point(x, y, v int)
	Finish() error
}

// LineDriver is implemented by drivers with a native line primitive.
// Drivers without it get the shared rasterizer.
type LineDriver interface {
	Line(x1, y1, x2, y2, v int)
}

// Looper is implemented by interactive drivers that must own the calling
// goroutine while drawing happens elsewhere (window event loops, terminal
// programs). Loop runs draw on another goroutine and returns only after draw
// has returned and the display loop has ended. The driver cancels the
// context it passes to draw when the user closes the display early.
type Looper interface {
	Loop(ctx context.Context, draw func(context.Context) error) error
}

// Options carries the per-surface settings a driver may honour.
type Options struct {
	// Mag replicates every pixel into a Mag x Mag block.
	Mag int

	// Out receives the rendered stream of file drivers.
	Out io.Writer

	// ForceFlush asks interactive drivers to refresh after every primitive.
	ForceFlush bool

	Logger *slog.Logger
}

// PointFunc sets a single pixel.
type PointFunc func(x, y, v int)

// binding is the resolved set of primitives for one surface.
type binding struct {
	name   string
	driver Driver
	point  PointFunc
	line   func(x1, y1, x2, y2, v int)
	looper Looper
}

func bind(name string, d Driver) *binding {
	b := &binding{name: name, driver: d, point: d.Point}
	if ld, ok := d.(LineDriver); ok {
		b.line = ld.Line
	} else {
		b.line = func(x1, y1, x2, y2, v int) {
			DrawLine(b.point, x1, y1, x2, y2, v)
		}
	}
	if lp, ok := d.(Looper); ok {
		b.looper = lp
	}
	return b
}
