package plot

import (
	"errors"
	"fmt"
)

// Domain errors for surface and driver setup.
var (
	// ErrUnknownDriver indicates a driver name that is not registered.
	ErrUnknownDriver = errors.New("plot: unknown driver")

	// ErrUnavailable indicates a registered driver that cannot run here
	// (no display, missing build tag).
	ErrUnavailable = errors.New("plot: driver not available")

	// ErrNoDriver indicates that no driver could be selected at all.
	ErrNoDriver = errors.New("plot: no driver available")

	// ErrInvalidSize indicates a width or height below one pixel.
	ErrInvalidSize = errors.New("plot: width and height must be at least 1")

	// ErrInvalidLevels indicates fewer than two colour levels.
	ErrInvalidLevels = errors.New("plot: levels must be at least 2")

	// ErrInvalidMag indicates a magnification factor below one.
	ErrInvalidMag = errors.New("plot: magnification must be at least 1")

	// ErrFinished indicates Finish was called twice.
	ErrFinished = errors.New("plot: surface already finished")
)

// DriverError wraps a failure reported by a driver primitive.
type DriverError struct {
	Driver string
	Op     string
	Err    error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("plot: %s %s: %v", e.Driver, e.Op, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}
