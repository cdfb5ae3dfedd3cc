// Package tui implements the terminal user interface for the pixelgrid
// editor.
//
// The editor is a single full-screen Bubble Tea screen following the Elm
// architecture: the Model holds all state, Update handles messages, and
// View is a pure function of the model.
//
// # Layout
//
//	PIXELGRID 16x16
//
//	  ███ ███ ███ ...      <- grid: 3-glyph cells, 1-glyph gaps
//	  ...
//
//	   1   2   3  ...      <- clickable palette bar
//	   ^                   <- active selection marker
//
//	  exported grid_colors_16x16.csv
//	  1-9 color · ←/h prev color · ...
//
// # Mouse
//
// Mouse support uses cell-motion tracking: press starts painting, motion
// while held keeps painting, release stops. The mouse bindings are thin
// adapters over the paint controller's state machine; positions are mapped
// through the picking package against the drawn grid rectangle, so clicks
// on the gaps between cells deliberately paint nothing.
//
// # Rendering
//
// The view renders the grid from a coordinate-indexed buffer of visual
// cell handles that the paint controller writes into, never from the grid
// state itself. The same sink optionally tees into the mirror hub when
// sharing is enabled.
//
// # Key Bindings
//
//   - 1-9: select palette color
//   - ←/h, →/l: cycle selection
//   - c: clear the grid
//   - e: export CSV
//   - q, ctrl+c: quit
//
// Help text is rendered with bubbles/help and stays in sync with the
// bindings.
package tui
