// Package driver implements the plot backends and registers them with the
// process-wide plot registry. Importing the package for its side effects
// makes every backend available to plot.Open:
//
//	import _ "github.com/san-kum/plotlab/internal/driver"
//
// Lowercase names render with a gray ramp, Capitalised names with a hue
// ramp whose first entry is black.
package driver
