//go:build ebiten

package driver

import (
	"context"
	"errors"
	"image/color"
	"os"
	"runtime"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/plotlab/internal/palette"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/raster"
)

const windowBuilt = true

// Window shows the surface in a desktop window. The window event loop owns
// the calling goroutine; drawing runs on its own. After drawing completes a
// mouse click (or Q/Esc) closes the window.
type Window struct {
	hue bool

	mu     sync.Mutex
	buf    *raster.Buffer
	pix    []byte
	pal    color.Palette
	levels int
	dirty  bool

	img    *ebiten.Image
	done   chan struct{}
	drawn  bool
	looped bool
	ctx    context.Context
}

func NewWindow(hue bool) *Window { return &Window{hue: hue} }

// WindowAvailable reports whether a display server is reachable.
func WindowAvailable() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

func (d *Window) Init(width, height, levels int, opts plot.Options) error {
	d.buf = raster.New(width, height, opts.Mag)
	b := d.buf.Bounds()
	d.pix = make([]byte, 4*b.Dx()*b.Dy())
	d.levels = levels
	d.pal = palette.For(levels, d.hue)
	d.done = make(chan struct{})
	d.dirty = true

	ebiten.SetWindowTitle("plotlab")
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return nil
}

func (d *Window) Point(x, y, v int) {
	d.mu.Lock()
	d.buf.Set(x, y, v)
	d.dirty = true
	d.mu.Unlock()
}

// Update handles input. Clicks only close the window once drawing is done;
// Q and Esc close it at any time.
func (d *Window) Update() error {
	if !d.drawn {
		select {
		case <-d.done:
			d.drawn = true
		default:
		}
	}
	if d.ctx != nil && d.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if d.drawn && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the buffer when it changed since the last frame.
func (d *Window) Draw(screen *ebiten.Image) {
	if d.img == nil {
		b := d.buf.Bounds()
		d.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	d.mu.Lock()
	if d.dirty {
		d.buf.RGBA(d.pix, d.pal, d.levels)
		d.img.WritePixels(d.pix)
		d.dirty = false
	}
	d.mu.Unlock()
	screen.DrawImage(d.img, nil)
}

func (d *Window) Layout(int, int) (int, int) {
	b := d.buf.Bounds()
	return b.Dx(), b.Dy()
}

// Loop runs the window event loop while draw fills the surface. Closing the
// window before drawing completes cancels draw and reports ErrInterrupted.
func (d *Window) Loop(ctx context.Context, draw func(context.Context) error) error {
	d.looped = true
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	d.ctx = parent

	drawn := make(chan error, 1)
	go func() {
		err := draw(ctx)
		drawn <- err
		close(d.done)
	}()

	err := ebiten.RunGame(d)
	interrupted := false
	select {
	case <-d.done:
	default:
		interrupted = true
	}
	cancel()
	drawErr := <-drawn

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if interrupted {
		return ErrInterrupted
	}
	return drawErr
}

// Finish shows the finished surface until the window is dismissed. After
// Loop the window is already gone.
func (d *Window) Finish() error {
	if d.looped {
		return nil
	}
	close(d.done)
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
