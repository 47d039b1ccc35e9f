// Package viz draws a live spirograph in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the live view, ticking the curve on a fixed frame interval
//   - [Canvas]: Braille-based pixel canvas with a colour per cell
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart the curve
//	E     - Toggle epicycloid / hypocycloid
//	P     - Cycle palettes
//	Tab   - Select parameter
//	Up/K  - Increase parameter (+5%)
//	Down/J - Decrease parameter (-5%)
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
