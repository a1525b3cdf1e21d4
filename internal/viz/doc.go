// Package viz renders plot surfaces as terminal text.
//
// Two renderings are provided:
//
//   - [Canvas]: monochrome braille cells, 2x4 dots per character
//   - [RenderBlocks]: coloured half-block cells, 1x2 pixels per character
//
// [Viewer] is the Bubble Tea model the interactive terminal driver runs. It
// repaints from a frame source on every tick until drawing completes, then
// waits for a key press or mouse click before quitting.
//
// # Key Bindings
//
//	Q/Esc   - Quit (after drawing completes)
//	T       - Cycle color themes
//	Click   - Quit (after drawing completes)
package viz
