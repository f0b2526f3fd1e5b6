// Package viz provides the interactive terminal front end.
//
// The package implements a TUI on top of the Bubble Tea framework:
//
//   - [Model]: drives one machine with tick-paced generations
//   - Cursor and mouse editing of live cells between generations
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	S     - Single step (pauses)
//	R     - Randomize board
//	C     - Clear board
//	P     - Stamp next pattern at the cursor
//	B     - Swap renderer (blocks/braille)
//	T     - Toggle the cell under the cursor
//	+/-   - Faster/slower
//	?     - Show help overlay
//
// # Mouse
//
// With the blocks renderer active, the left button sets cells alive and
// the right button clears them; dragging paints continuously.
package viz
