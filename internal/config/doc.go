// Package config loads and stores user configuration for the pixelgrid
// editor.
//
// Configuration lives in a YAML file in the platform config directory
// (~/.config/pixelgrid/config.yaml on Linux/macOS, %LOCALAPPDATA%\pixelgrid
// on Windows). A missing file yields defaults; saving is atomic
// (temp file + rename) so a crash never corrupts the file.
//
// The file controls the grid dimension, the cell fill factor (how much of
// each cell's pitch the cell body covers), the export directory, an
// optional palette override, and the mirror server settings:
//
//	version: 1
//	grid_size: 16
//	cell_fill: 0.75
//	export_dir: ~/pixels
//	palette:
//	  - name: ink
//	    color: "#101010"
//	mirror:
//	  port: 8137
//	  announce: true
package config
