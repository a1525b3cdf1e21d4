// Package plot provides the device-independent plotting layer shared by the
// plotlab demos.
//
// A [Surface] is opened against a named [Driver] taken from a [Registry]:
//
//	s, err := plot.Open(640, 480, 256, "pgm", plot.WithOutput(f))
//	if err != nil {
//		return err
//	}
//	s.SetRange(-2.4, 1.0, -1.4, 1.4)
//	s.Point(x, y, level)
//	return s.Finish()
//
// Callers draw in a continuous logical coordinate space. The [Mapper]
// converts it to pixel coordinates, colour levels are clamped to
// [0, levels-1] and optionally inverted, and the result is forwarded to the
// driver. Drivers that can only set pixels get a line primitive from the
// shared rasterizer ([DrawLine]).
//
// # Drivers
//
// Every driver implements Init, Point and Finish. Native line drawing
// ([LineDriver]) and ownership of the calling goroutine for live display
// ([Looper]) are optional capabilities discovered at Open time.
//
// # Thread Safety
//
// A Surface is NOT safe for concurrent use. Exactly one goroutine draws on
// it; interactive drivers synchronise their own display loop.
package plot
