package filter

import (
	"fmt"
	"math"

	"raster-processing/internal/raster"
)

// Directional 3×3 kernels. Row index is dy+1, column index is dx+1.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
	prewittX = [3][3]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	}
	prewittY = [3][3]float64{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	}
)

// Sobel computes per-channel gradient magnitude with the Sobel operator:
// the horizontal and vertical 3×3 kernels are convolved independently and
// each sample becomes √(gx²+gy²), clamped to [0, 255]. The one-pixel border,
// where the full 3×3 window does not fit, is set to zero.
type Sobel struct{}

// NewSobel creates a Sobel gradient filter.
func NewSobel() *Sobel { return &Sobel{} }

// Name implements Filter.
func (f *Sobel) Name() string { return "sobel filter" }

// Apply implements Filter.
func (f *Sobel) Apply(r *raster.Raster) error {
	return applyGradient(r, f.Name(), sobelX, sobelY)
}

// Prewitt computes per-channel gradient magnitude with the Prewitt operator.
// Same contract as Sobel, with unweighted directional kernels.
type Prewitt struct{}

// NewPrewitt creates a Prewitt gradient filter.
func NewPrewitt() *Prewitt { return &Prewitt{} }

// Name implements Filter.
func (f *Prewitt) Name() string { return "prewitt filter" }

// Apply implements Filter.
func (f *Prewitt) Apply(r *raster.Raster) error {
	return applyGradient(r, f.Name(), prewittX, prewittY)
}

// applyGradient convolves the two directional kernels over the interior of
// the raster and writes the gradient magnitude, then zeroes the border.
func applyGradient(r *raster.Raster, name string, kx, ky [3][3]float64) error {
	width, height, channels := r.Width(), r.Height(), r.Channels()
	if width < 3 || height < 3 {
		return fmt.Errorf("%s: raster %dx%d smaller than the 3x3 kernel", name, width, height)
	}

	snap := r.Snapshot()
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			for c := 0; c < channels; c++ {
				var gx, gy float64
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						v := snap.At(x+dx, y+dy, c)
						gx += v * kx[dy+1][dx+1]
						gy += v * ky[dy+1][dx+1]
					}
				}
				r.Set(x, y, c, math.Sqrt(gx*gx+gy*gy))
			}
		}
	}

	zeroBorders(r)
	return nil
}

// zeroBorders clears the one-pixel frame where the gradient window does not
// fully fit.
func zeroBorders(r *raster.Raster) {
	width, height, channels := r.Width(), r.Height(), r.Channels()
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			r.Set(x, 0, c, 0)
			r.Set(x, height-1, c, 0)
		}
	}
	for y := 0; y < height; y++ {
		for c := 0; c < channels; c++ {
			r.Set(0, y, c, 0)
			r.Set(width-1, y, c, 0)
		}
	}
}
