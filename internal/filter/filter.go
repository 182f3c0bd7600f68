package filter

import "raster-processing/internal/raster"

// Filter is the single capability every operator in this package exposes:
// transform a raster in place, and identify itself by name.
//
// Apply runs one complete, synchronous pass and returns before the caller
// regains control of the raster; implementations never retain the raster
// beyond the call.
type Filter interface {
	Apply(r *raster.Raster) error
	Name() string
}

// Sample is one in-bounds neighborhood reading: the offset it was taken at
// and the snapshot value found there.
type Sample struct {
	DX    int
	DY    int
	Value float64
}

// reducer folds a pixel's neighborhood into its output value. center is the
// pixel's own snapshot value; samples holds the in-bounds readings (the
// backing array is reused between pixels and must not be retained).
type reducer func(center float64, samples []Sample) float64

// applyNeighborhood runs one snapshot-isolated pass over the raster.
//
// For every (x, y, c) it collects the snapshot values at (x+dx, y+dy, c) for
// each element offset whose target lies inside the grid — out-of-bounds
// offsets are omitted, not padded — reduces the collection to one value, and
// writes it back through Set (which clamps into [0, 255]). All reads come
// from the pre-pass snapshot, so the pass has no read-after-write aliasing.
func applyNeighborhood(r *raster.Raster, elem Element, reduce reducer) {
	snap := r.Snapshot()
	width, height, channels := r.Width(), r.Height(), r.Channels()

	samples := make([]Sample, 0, len(elem.offsets))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				samples = samples[:0]
				for _, off := range elem.offsets {
					nx := x + off.DX
					ny := y + off.DY
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					samples = append(samples, Sample{off.DX, off.DY, snap.At(nx, ny, c)})
				}
				r.Set(x, y, c, reduce(snap.At(x, y, c), samples))
			}
		}
	}
}
