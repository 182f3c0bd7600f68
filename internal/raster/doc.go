// Package raster implements the in-memory sample grid that every filter in
// this module reads and writes.
//
// A Raster is a dense, row-major grid of float64 light-intensity samples with
// one (grayscale) or three (RGB) channels. Every stored sample is kept inside
// the closed interval [0, 255]: Set clamps unconditionally, so the range
// invariant holds after any sequence of operations.
//
// # Coordinate System
//
// All pixel coordinates are 0-based: X grows rightward, Y grows downward,
// and (0,0) is the top-left pixel. A sample is addressed as (x, y, c) with
// c < Channels().
//
// # Snapshots
//
// Snapshot returns an immutable deep copy of the grid. Filters snapshot the
// raster before a pass so that every pixel of the pass reads pre-pass values;
// callers use the same mechanism to keep an "original" around and Restore it
// later.
//
// # Error Handling
//
// Invalid construction parameters (non-positive dimensions, unsupported
// channel count, short buffers) are reported as *DimensionError. Sample
// access outside the grid is a programmer error and panics with a
// *BoundsError rather than returning a value that could be silently ignored.
package raster
