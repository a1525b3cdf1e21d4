package driver

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/san-kum/plotlab/internal/palette"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/raster"
	"github.com/san-kum/plotlab/internal/viz"
)

// ErrInterrupted is returned when the user quits a terminal display before
// drawing completes.
var ErrInterrupted = errors.New("driver: interrupted")

// Term shows the surface live in the terminal with coloured half blocks.
// Drawing runs on its own goroutine while the terminal program owns the
// caller's. Finish waits for a key press or a mouse click.
type Term struct {
	hue     bool
	options []tea.ProgramOption

	mu     sync.Mutex
	buf    *raster.Buffer
	pal    color.Palette
	levels int
	flush  bool
	kick   chan struct{}
	looped bool
	log    *slog.Logger
}

// NewTerm returns a terminal driver. Extra program options are passed to
// Bubble Tea, which lets tests substitute input and output.
func NewTerm(hue bool, options ...tea.ProgramOption) *Term {
	return &Term{hue: hue, options: options}
}

// TermAvailable reports whether stdout is an interactive terminal.
func TermAvailable() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (d *Term) Init(width, height, levels int, opts plot.Options) error {
	d.buf = raster.New(width, height, 1)
	d.levels = levels
	d.pal = palette.For(levels, d.hue)
	d.flush = opts.ForceFlush
	d.kick = make(chan struct{}, 1)
	d.log = logger(opts)
	if opts.Mag > 1 {
		d.log.Debug("terminal cells are fixed size, ignoring mag", "mag", opts.Mag)
	}
	return nil
}

func (d *Term) Point(x, y, v int) {
	d.mu.Lock()
	d.buf.Set(x, y, v)
	d.mu.Unlock()
	if d.flush {
		select {
		case d.kick <- struct{}{}:
		default:
		}
	}
}

func (d *Term) frame() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return viz.RenderBlocks(d.buf, d.pal, d.levels)
}

func (d *Term) program(ctx context.Context, v viz.Viewer) *tea.Program {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, d.options...)
	return tea.NewProgram(v, opts...)
}

// Loop runs the terminal program and the drawing routine concurrently. It
// returns after drawing has completed and the user dismissed the display.
// Quitting early cancels the drawing context and reports ErrInterrupted.
func (d *Term) Loop(ctx context.Context, draw func(context.Context) error) error {
	d.looped = true
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := d.program(ctx, viz.NewViewer("plotlab", d.frame))

	go func() {
		for {
			select {
			case <-d.kick:
				p.Send(viz.RefreshMsg{})
			case <-ctx.Done():
				return
			}
		}
	}()

	drawn := make(chan error, 1)
	go func() {
		err := draw(ctx)
		drawn <- err
		p.Send(viz.DoneMsg{Err: err})
	}()

	final, err := p.Run()
	cancel()
	drawErr := <-drawn
	if err != nil {
		return err
	}
	if v, ok := final.(viz.Viewer); ok && v.Interrupted() {
		return ErrInterrupted
	}
	return drawErr
}

// Finish displays the completed surface until dismissed. After Loop the
// display has already been dismissed and Finish returns immediately.
func (d *Term) Finish() error {
	if d.looped {
		return nil
	}
	v := viz.NewViewer("plotlab", d.frame)
	m, _ := v.Update(viz.DoneMsg{})
	_, err := d.program(context.Background(), m.(viz.Viewer)).Run()
	return err
}
