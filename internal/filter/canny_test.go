package filter

import (
	"math"
	"testing"
)

func TestNewCanny_InvalidThresholds(t *testing.T) {
	tests := []struct {
		name      string
		low, high float64
	}{
		{"low above high", 150, 50},
		{"low equals high", 100, 100},
		{"low negative", -1, 100},
		{"high above range", 50, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCanny(tt.low, tt.high); !isConfigError(err) {
				t.Errorf("NewCanny(%g,%g): got %v, want *ConfigError", tt.low, tt.high, err)
			}
		})
	}
}

// TestNewCanny_FailsBeforeMutation: a rejected configuration never touches a
// raster — construction happens with no raster in sight, so there is nothing
// to roll back.
func TestNewCanny_FailsBeforeMutation(t *testing.T) {
	r := newGradientRaster(t)
	snap := r.Snapshot()

	if _, err := NewCanny(200, 100); err == nil {
		t.Fatal("NewCanny(200,100) did not fail")
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r.At(x, y, 0) != snap.At(x, y, 0) {
				t.Fatalf("raster mutated by failed construction at (%d,%d)", x, y)
			}
		}
	}
}

func TestCanny_ConstantRaster(t *testing.T) {
	r := newConstantRaster(t, 20, 20, 1, 128)

	canny, err := NewCanny(50, 150)
	if err != nil {
		t.Fatalf("NewCanny failed: %v", err)
	}
	if err := canny.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if got := r.At(x, y, 0); got != 0 {
				t.Errorf("pixel (%d,%d): got %v, want 0 (no edges in constant raster)", x, y, got)
			}
		}
	}
}

func TestCanny_StepEdge(t *testing.T) {
	r := newStepRaster(t, 20, 20, 10)

	canny, err := NewCanny(50, 150)
	if err != nil {
		t.Fatalf("NewCanny failed: %v", err)
	}
	if err := canny.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// Output is a binary edge map
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if v := r.At(x, y, 0); v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d): got %v, want 0 or 255", x, y, v)
			}
		}
	}

	// The vertical edge is detected near the step column
	edgeFound := false
	for x := 8; x <= 11 && !edgeFound; x++ {
		if r.At(x, 10, 0) == 255 {
			edgeFound = true
		}
	}
	if !edgeFound {
		t.Error("vertical step edge was not detected")
	}

	// Flat regions away from the step stay empty
	for y := 2; y < 18; y++ {
		if r.At(3, y, 0) != 0 {
			t.Errorf("flat region (3,%d): got %v, want 0", y, r.At(3, y, 0))
		}
		if r.At(16, y, 0) != 0 {
			t.Errorf("flat region (16,%d): got %v, want 0", y, r.At(16, y, 0))
		}
	}
}

func TestCanny_ThreeChannelOutput(t *testing.T) {
	r := newConstantRaster(t, 12, 12, 3, 0)
	for y := 0; y < 12; y++ {
		for x := 6; x < 12; x++ {
			for c := 0; c < 3; c++ {
				r.Set(x, y, c, 255)
			}
		}
	}

	canny, err := NewCanny(50, 150)
	if err != nil {
		t.Fatalf("NewCanny failed: %v", err)
	}
	if err := canny.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// All channels carry the same binary decision
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			v := r.At(x, y, 0)
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d): got %v, want 0 or 255", x, y, v)
			}
			if r.At(x, y, 1) != v || r.At(x, y, 2) != v {
				t.Errorf("pixel (%d,%d): channels disagree", x, y)
			}
		}
	}
}

func TestCanny_RasterTooSmall(t *testing.T) {
	r := newConstantRaster(t, 2, 2, 1, 0)

	canny, err := NewCanny(50, 150)
	if err != nil {
		t.Fatalf("NewCanny failed: %v", err)
	}
	if err := canny.Apply(r); err == nil {
		t.Error("Apply on 2x2 raster did not fail")
	}
}

func TestQuantizeDirection(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  uint8
	}{
		{"east", 0, dir0},
		{"west", math.Pi, dir0},
		{"north", math.Pi / 2, dir90},
		{"south", -math.Pi / 2, dir90},
		{"north-east", math.Pi / 4, dir45},
		{"south-east", -math.Pi / 4, dir135},
		{"almost horizontal", math.Pi / 16, dir0},
		{"almost vertical", 7 * math.Pi / 16, dir90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantizeDirection(tt.angle); got != tt.want {
				t.Errorf("quantizeDirection(%v): got %d, want %d", tt.angle, got, tt.want)
			}
		})
	}
}

// TestHysteresis_TransitivePropagation: a chain of weak pixels anchored by a
// single strong pixel is promoted end to end; an identical chain with no
// anchor is discarded entirely.
func TestHysteresis_TransitivePropagation(t *testing.T) {
	const width, height = 7, 3
	low, high := 50.0, 150.0

	// Row 1 holds a strong anchor at x=0 followed by five weak pixels; the
	// last column is below the low threshold.
	suppressed := make([]float64, width*height)
	suppressed[1*width+0] = 200
	for x := 1; x <= 5; x++ {
		suppressed[1*width+x] = 100
	}
	suppressed[1*width+6] = 10

	edges := hysteresis(suppressed, low, high, width, height)

	for x := 0; x <= 5; x++ {
		if !edges[1*width+x] {
			t.Errorf("chain pixel x=%d not promoted", x)
		}
	}
	if edges[1*width+6] {
		t.Error("sub-threshold pixel was promoted")
	}

	// Same chain, anchor removed: nothing survives.
	suppressed[1*width+0] = 100
	edges = hysteresis(suppressed, low, high, width, height)
	for x := 0; x <= 6; x++ {
		if edges[1*width+x] {
			t.Errorf("unanchored weak pixel x=%d was promoted", x)
		}
	}
}

// TestHysteresis_DiagonalConnectivity: promotion follows 8-connectivity, so
// a diagonal weak neighbor of a strong pixel is an edge.
func TestHysteresis_DiagonalConnectivity(t *testing.T) {
	const width, height = 3, 3
	suppressed := make([]float64, width*height)
	suppressed[0] = 200         // (0,0) strong
	suppressed[1*width+1] = 100 // (1,1) weak, diagonal neighbor
	suppressed[2*width+2] = 100 // (2,2) weak, diagonal of (1,1)

	edges := hysteresis(suppressed, 50, 150, width, height)

	if !edges[1*width+1] || !edges[2*width+2] {
		t.Error("diagonal weak chain was not promoted")
	}
}
