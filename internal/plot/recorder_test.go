package plot

import (
	"context"
	"sync"
)

type call struct {
	op   string
	args [5]int
}

// recorder is a point-only driver that logs every primitive.
type recorder struct {
	mu        sync.Mutex
	width     int
	height    int
	levels    int
	opts      Options
	calls     []call
	finished  int
	initErr   error
	finishErr error
}

func (r *recorder) Init(width, height, levels int, opts Options) error {
	r.width, r.height, r.levels, r.opts = width, height, levels, opts
	return r.initErr
}

func (r *recorder) Point(x, y, v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{op: "point", args: [5]int{x, y, v}})
}

func (r *recorder) Finish() error {
	r.finished++
	return r.finishErr
}

func (r *recorder) points() map[Pixel]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := make(map[Pixel]int)
	for _, c := range r.calls {
		if c.op == "point" {
			m[Pixel{c.args[0], c.args[1]}] = c.args[2]
		}
	}
	return m
}

// lineRecorder adds a native line primitive.
type lineRecorder struct {
	recorder
}

func (r *lineRecorder) Line(x1, y1, x2, y2, v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{op: "line", args: [5]int{x1, y1, x2, y2, v}})
}

// looperRecorder runs draw on its own goroutine like a window event loop.
type looperRecorder struct {
	recorder
	loops int
}

func (r *looperRecorder) Loop(ctx context.Context, draw func(context.Context) error) error {
	r.loops++
	done := make(chan error, 1)
	go func() { done <- draw(ctx) }()
	return <-done
}

func registryWith(name string, d Driver) *Registry {
	reg := NewRegistry()
	reg.Register(name, 10, func() Driver { return d }, nil)
	return reg
}
