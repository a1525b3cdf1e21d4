//go:build !ebiten

package driver

import (
	"errors"

	"github.com/san-kum/plotlab/internal/plot"
)

const windowBuilt = false

var errNoWindow = errors.New("driver: window support requires the ebiten build tag")

// Window is a placeholder in builds without the ebiten tag. It is registered
// so the names resolve, but it is never available.
type Window struct{ hue bool }

func NewWindow(hue bool) *Window { return &Window{hue: hue} }

// WindowAvailable is always false without the ebiten tag.
func WindowAvailable() bool { return false }

func (*Window) Init(int, int, int, plot.Options) error { return errNoWindow }
func (*Window) Point(int, int, int)                    {}
func (*Window) Finish() error                          { return errNoWindow }
