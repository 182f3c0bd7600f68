package raster

import (
	"errors"
	"testing"
)

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, channels int
	}{
		{"zero width", 0, 10, 1},
		{"zero height", 10, 0, 3},
		{"negative width", -5, 10, 1},
		{"negative height", 10, -5, 1},
		{"zero channels", 10, 10, 0},
		{"two channels", 10, 10, 2},
		{"four channels", 10, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, tt.channels)
			var dimErr *DimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("New(%d,%d,%d): got %v, want *DimensionError",
					tt.width, tt.height, tt.channels, err)
			}
		})
	}
}

func TestNew_ValidDimensions(t *testing.T) {
	for _, channels := range []int{1, 3} {
		r, err := New(4, 3, channels)
		if err != nil {
			t.Fatalf("New(4,3,%d) failed: %v", channels, err)
		}
		if r.Width() != 4 || r.Height() != 3 || r.Channels() != channels {
			t.Errorf("dimensions: got %dx%dx%d, want 4x3x%d",
				r.Width(), r.Height(), r.Channels(), channels)
		}
		// New raster is zero-filled
		if v := r.At(3, 2, channels-1); v != 0 {
			t.Errorf("new raster sample: got %v, want 0", v)
		}
	}
}

func TestFromBuffer(t *testing.T) {
	buf := []float64{0, 64, 128, 300, -10, 255}
	r, err := FromBuffer(buf, 3, 2, 1)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	// Out-of-range samples are clamped on load
	if v := r.At(0, 1, 0); v != 255 {
		t.Errorf("sample above range: got %v, want 255 (clamped)", v)
	}
	if v := r.At(1, 1, 0); v != 0 {
		t.Errorf("sample below range: got %v, want 0 (clamped)", v)
	}
	if v := r.At(1, 0, 0); v != 64 {
		t.Errorf("in-range sample: got %v, want 64", v)
	}

	// The buffer is copied, not aliased
	buf[1] = 99
	if v := r.At(1, 0, 0); v != 64 {
		t.Errorf("raster aliases caller buffer: got %v, want 64", v)
	}
}

func TestFromBuffer_WrongLength(t *testing.T) {
	_, err := FromBuffer(make([]float64, 5), 3, 2, 1)
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("short buffer: got %v, want *DimensionError", err)
	}
}

func TestSet_Clamps(t *testing.T) {
	r := mustNew(t, 2, 2, 1)

	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{127.5, 127.5},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		r.Set(0, 0, 0, tt.in)
		if got := r.At(0, 0, 0); got != tt.want {
			t.Errorf("Set(%v): stored %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	r := mustNew(t, 3, 3, 1)

	tests := []struct {
		name    string
		x, y, c int
	}{
		{"negative x", -1, 0, 0},
		{"x past width", 3, 0, 0},
		{"negative y", 0, -1, 0},
		{"y past height", 0, 3, 0},
		{"channel past count", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					t.Fatal("access did not panic")
				}
				if _, ok := recovered.(*BoundsError); !ok {
					t.Fatalf("panic value: got %T, want *BoundsError", recovered)
				}
			}()
			r.At(tt.x, tt.y, tt.c)
		})
	}
}

func TestSnapshot_Independence(t *testing.T) {
	r := mustNew(t, 2, 2, 1)
	r.Set(1, 1, 0, 42)

	snap := r.Snapshot()
	r.Set(1, 1, 0, 200)

	if v := snap.At(1, 1, 0); v != 42 {
		t.Errorf("snapshot changed after raster mutation: got %v, want 42", v)
	}
	if v := r.At(1, 1, 0); v != 200 {
		t.Errorf("raster: got %v, want 200", v)
	}
}

func TestRestore(t *testing.T) {
	r := mustNew(t, 3, 2, 3)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			for c := 0; c < 3; c++ {
				r.Set(x, y, c, float64(10*y+x+c))
			}
		}
	}
	snap := r.Snapshot()

	r.Set(2, 1, 2, 250)
	r.Set(0, 0, 0, 250)

	if err := r.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if v := r.At(2, 1, 2); v != 14 {
		t.Errorf("restored sample: got %v, want 14", v)
	}
	if v := r.At(0, 0, 0); v != 0 {
		t.Errorf("restored sample: got %v, want 0", v)
	}
}

func TestRestore_DimensionMismatch(t *testing.T) {
	r := mustNew(t, 3, 3, 1)
	other := mustNew(t, 4, 3, 1)

	err := r.Restore(other.Snapshot())
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("mismatched restore: got %v, want *DimensionError", err)
	}
}

// Helper functions

func mustNew(t *testing.T, width, height, channels int) *Raster {
	t.Helper()
	r, err := New(width, height, channels)
	if err != nil {
		t.Fatalf("New(%d,%d,%d) failed: %v", width, height, channels, err)
	}
	return r
}
