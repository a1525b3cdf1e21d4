package driver

import "github.com/san-kum/plotlab/internal/plot"

// None discards everything. It is useful for timing the drawing code alone.
type None struct{}

func (None) Init(int, int, int, plot.Options) error { return nil }
func (None) Point(int, int, int)                    {}
func (None) Line(int, int, int, int, int)           {}
func (None) Finish() error                          { return nil }
