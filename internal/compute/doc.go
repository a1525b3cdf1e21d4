// Package compute spreads per-row work across CPU cores.
//
// Work is split into contiguous chunks, one goroutine per worker, each
// writing only its own rows. Callers draw the results afterwards on a
// single goroutine, so nothing here touches a plot surface.
package compute
