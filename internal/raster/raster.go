package raster

import "fmt"

// MaxValue is the upper bound of the sample range. Samples always lie in
// [0, MaxValue] once stored.
const MaxValue = 255.0

// DimensionError reports invalid raster dimensions or an unsupported channel
// count at construction time.
type DimensionError struct {
	Width    int
	Height   int
	Channels int
	Reason   string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid raster dimensions %dx%dx%d: %s",
		e.Width, e.Height, e.Channels, e.Reason)
}

// BoundsError reports a sample access outside the grid. It is delivered by
// panic: out-of-bounds access is a programmer error, not a recoverable
// condition.
type BoundsError struct {
	X, Y, C                 int
	Width, Height, Channels int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sample (%d,%d,%d) outside raster %dx%dx%d",
		e.X, e.Y, e.C, e.Width, e.Height, e.Channels)
}

// Raster is a dense grid of float64 samples in [0, 255] with 1 or 3 channels.
//
// Storage is row-major with interleaved channels: sample (x, y, c) lives at
// pix[(y*width+x)*channels + c]. The zero value is not usable; construct with
// New or FromBuffer.
type Raster struct {
	width    int
	height   int
	channels int
	pix      []float64
}

// New creates a zero-filled raster.
//
// Returns a *DimensionError if width or height is not positive or channels is
// not 1 or 3.
func New(width, height, channels int) (*Raster, error) {
	if err := checkDimensions(width, height, channels); err != nil {
		return nil, err
	}
	return &Raster{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]float64, width*height*channels),
	}, nil
}

// FromBuffer creates a raster from an externally supplied flat buffer laid
// out row-major with interleaved channels. The buffer is copied, not aliased,
// and every sample is clamped into [0, 255].
//
// Returns a *DimensionError if the dimensions are invalid or the buffer does
// not hold exactly width*height*channels samples.
func FromBuffer(buf []float64, width, height, channels int) (*Raster, error) {
	if err := checkDimensions(width, height, channels); err != nil {
		return nil, err
	}
	if len(buf) != width*height*channels {
		return nil, &DimensionError{
			Width:    width,
			Height:   height,
			Channels: channels,
			Reason:   fmt.Sprintf("buffer holds %d samples, need %d", len(buf), width*height*channels),
		}
	}
	r := &Raster{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]float64, len(buf)),
	}
	for i, v := range buf {
		r.pix[i] = clamp(v)
	}
	return r, nil
}

func checkDimensions(width, height, channels int) error {
	switch {
	case width <= 0 || height <= 0:
		return &DimensionError{width, height, channels, "width and height must be positive"}
	case channels != 1 && channels != 3:
		return &DimensionError{width, height, channels, "channel count must be 1 or 3"}
	}
	return nil
}

// Width returns the number of pixel columns.
func (r *Raster) Width() int { return r.width }

// Height returns the number of pixel rows.
func (r *Raster) Height() int { return r.height }

// Channels returns the number of channels per pixel (1 or 3).
func (r *Raster) Channels() int { return r.channels }

// At returns the sample at (x, y, c). Panics with a *BoundsError if the
// coordinate is outside the grid.
func (r *Raster) At(x, y, c int) float64 {
	r.check(x, y, c)
	return r.pix[(y*r.width+x)*r.channels+c]
}

// Set stores a sample at (x, y, c), clamping the value into [0, 255].
// Panics with a *BoundsError if the coordinate is outside the grid.
func (r *Raster) Set(x, y, c int, v float64) {
	r.check(x, y, c)
	r.pix[(y*r.width+x)*r.channels+c] = clamp(v)
}

func (r *Raster) check(x, y, c int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height || c < 0 || c >= r.channels {
		panic(&BoundsError{x, y, c, r.width, r.height, r.channels})
	}
}

// Snapshot returns an immutable deep copy of the raster's current samples.
func (r *Raster) Snapshot() *Snapshot {
	pix := make([]float64, len(r.pix))
	copy(pix, r.pix)
	return &Snapshot{
		width:    r.width,
		height:   r.height,
		channels: r.channels,
		pix:      pix,
	}
}

// Restore overwrites every sample with the snapshot's contents.
//
// Returns a *DimensionError if the snapshot was taken from a raster of
// different dimensions.
func (r *Raster) Restore(s *Snapshot) error {
	if s.width != r.width || s.height != r.height || s.channels != r.channels {
		return &DimensionError{
			Width:    s.width,
			Height:   s.height,
			Channels: s.channels,
			Reason:   fmt.Sprintf("snapshot does not match raster %dx%dx%d", r.width, r.height, r.channels),
		}
	}
	copy(r.pix, s.pix)
	return nil
}

// Snapshot is a read-only deep copy of a raster's samples at a point in time.
// It is safe to share: nothing can mutate it after creation.
type Snapshot struct {
	width    int
	height   int
	channels int
	pix      []float64
}

// Width returns the number of pixel columns.
func (s *Snapshot) Width() int { return s.width }

// Height returns the number of pixel rows.
func (s *Snapshot) Height() int { return s.height }

// Channels returns the number of channels per pixel.
func (s *Snapshot) Channels() int { return s.channels }

// At returns the sample at (x, y, c). Panics with a *BoundsError if the
// coordinate is outside the grid.
func (s *Snapshot) At(x, y, c int) float64 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height || c < 0 || c >= s.channels {
		panic(&BoundsError{x, y, c, s.width, s.height, s.channels})
	}
	return s.pix[(y*s.width+x)*s.channels+c]
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
