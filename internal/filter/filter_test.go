package filter

import (
	"testing"

	"raster-processing/internal/raster"
)

// TestPassReadsFromSnapshot verifies that one Apply pass never reads another
// pixel's fresh output: a single bright pixel dilated with a 3×3 element must
// spread exactly one step, not smear across the scan order.
func TestPassReadsFromSnapshot(t *testing.T) {
	r := newConstantRaster(t, 9, 9, 1, 0)
	r.Set(4, 4, 0, 255)

	dilate, err := NewDilation(3)
	if err != nil {
		t.Fatalf("NewDilation failed: %v", err)
	}
	if err := dilate.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := 0.0
			if x >= 3 && x <= 5 && y >= 3 && y <= 5 {
				want = 255
			}
			if got := r.At(x, y, 0); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestBorderOmission verifies the boundary policy: offsets landing outside
// the grid are dropped from the collection, so the corner mean averages only
// its four in-bounds neighbors.
func TestBorderOmission(t *testing.T) {
	r := newGradientRaster(t)

	mean, err := NewMean(3)
	if err != nil {
		t.Fatalf("NewMean failed: %v", err)
	}
	if err := mean.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Corner (0,0): in-bounds values 0, 2.55, 25.5, 28.05 — mean 14.025.
	// Zero-padding over the full 3x3 window would have given 56.1/9 ≈ 6.23.
	if got, want := r.At(0, 0, 0), 14.025; absDiff(got, want) > 1e-9 {
		t.Errorf("corner mean: got %v, want %v", got, want)
	}

	// Interior (5,5): the gradient is linear, so the window mean equals the
	// center value.
	if got, want := r.At(5, 5, 0), 140.25; absDiff(got, want) > 1e-9 {
		t.Errorf("interior mean: got %v, want %v", got, want)
	}
}

// TestApplyAllChannels verifies the machinery filters every channel
// independently.
func TestApplyAllChannels(t *testing.T) {
	r := newConstantRaster(t, 5, 5, 3, 0)
	for c := 0; c < 3; c++ {
		r.Set(2, 2, c, float64(100+50*c))
	}

	erode, err := NewErosion(3)
	if err != nil {
		t.Fatalf("NewErosion failed: %v", err)
	}
	if err := erode.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for c := 0; c < 3; c++ {
		if got := r.At(2, 2, c); got != 0 {
			t.Errorf("channel %d: got %v, want 0", c, got)
		}
	}
}

// Helper functions

// newGradientRaster builds the 10x10 single-channel ramp
// value(x,y) = (y*10+x)*2.55, spanning 0 to 252.45.
func newGradientRaster(t *testing.T) *raster.Raster {
	t.Helper()
	r, err := raster.New(10, 10, 1)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			r.Set(x, y, 0, float64(y*10+x)*2.55)
		}
	}
	return r
}

func newConstantRaster(t *testing.T, width, height, channels int, v float64) *raster.Raster {
	t.Helper()
	r, err := raster.New(width, height, channels)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				r.Set(x, y, c, v)
			}
		}
	}
	return r
}

// cloneRaster duplicates a raster through its snapshot.
func cloneRaster(t *testing.T, r *raster.Raster) *raster.Raster {
	t.Helper()
	out, err := raster.New(r.Width(), r.Height(), r.Channels())
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	if err := out.Restore(r.Snapshot()); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	return out
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
