package filter

import (
	"fmt"
	"math"

	"raster-processing/internal/raster"
)

// Smoothing stage parameters, fixed by the pipeline.
const (
	cannySmoothSize  = 5
	cannySmoothSigma = 1.4
)

// Quantized gradient directions used by non-maximum suppression.
const (
	dir0 = iota // horizontal gradient: compare (x−1,y) and (x+1,y)
	dir45
	dir90
	dir135
)

// Canny is the multi-stage edge detector. Apply runs four stages in order,
// each consuming the previous stage's full output:
//
//  1. Gaussian smoothing (5×5, σ≈1.4) to suppress noise before
//     differentiation.
//  2. Sobel gradient on the first channel, producing a magnitude and a
//     direction quantized into four bins (0°, 45°, 90°, 135°).
//  3. Non-maximum suppression: a magnitude survives only if it is ≥ both
//     neighbors along its quantized direction, thinning ridges to one pixel.
//  4. Hysteresis: magnitudes ≥ high become definite edges; magnitudes in
//     [low, high) are promoted only if reachable from a definite edge
//     through a chain of 8-connected in-range pixels. The promotion is the
//     transitive closure, computed with an explicit worklist rather than
//     recursion, so arbitrarily large edge regions cannot overflow the stack.
//
// The result is a binary edge map: every channel of every pixel is 0 or 255.
type Canny struct {
	low    float64
	high   float64
	smooth *Gaussian
}

// NewCanny creates an edge detector with hysteresis thresholds low < high,
// both within [0, 255]. Invalid thresholds return a *ConfigError and no
// raster is touched.
func NewCanny(low, high float64) (*Canny, error) {
	if low < 0 || low > 255 || high < 0 || high > 255 {
		return nil, &ConfigError{
			Filter: "canny filter",
			Param:  "thresholds",
			Reason: fmt.Sprintf("must lie in [0,255], got low=%g high=%g", low, high),
		}
	}
	if low >= high {
		return nil, &ConfigError{
			Filter: "canny filter",
			Param:  "thresholds",
			Reason: fmt.Sprintf("low must be < high, got low=%g high=%g", low, high),
		}
	}
	smooth, err := NewGaussian(cannySmoothSize, cannySmoothSigma)
	if err != nil {
		return nil, err
	}
	return &Canny{low: low, high: high, smooth: smooth}, nil
}

// Name implements Filter.
func (f *Canny) Name() string { return "canny filter" }

// LowThreshold returns the configured low hysteresis threshold.
func (f *Canny) LowThreshold() float64 { return f.low }

// HighThreshold returns the configured high hysteresis threshold.
func (f *Canny) HighThreshold() float64 { return f.high }

// Apply implements Filter.
func (f *Canny) Apply(r *raster.Raster) error {
	width, height := r.Width(), r.Height()
	if width < 3 || height < 3 {
		return fmt.Errorf("canny filter: raster %dx%d smaller than the 3x3 gradient kernel", width, height)
	}

	if err := f.smooth.Apply(r); err != nil {
		return err
	}

	magnitude, direction := cannyGradient(r.Snapshot())
	suppressed := suppressNonMaxima(magnitude, direction, width, height)
	edges := hysteresis(suppressed, f.low, f.high, width, height)

	channels := r.Channels()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := 0.0
			if edges[y*width+x] {
				v = raster.MaxValue
			}
			for c := 0; c < channels; c++ {
				r.Set(x, y, c, v)
			}
		}
	}
	return nil
}

// cannyGradient convolves the Sobel kernels over the first channel of the
// smoothed snapshot. It returns, per pixel, the raw (unclamped) gradient
// magnitude and the direction quantized into four bins; the one-pixel border
// is left at zero magnitude.
func cannyGradient(snap *raster.Snapshot) (magnitude []float64, direction []uint8) {
	width, height := snap.Width(), snap.Height()
	magnitude = make([]float64, width*height)
	direction = make([]uint8, width*height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := snap.At(x+dx, y+dy, 0)
					gx += v * sobelX[dy+1][dx+1]
					gy += v * sobelY[dy+1][dx+1]
				}
			}
			i := y*width + x
			magnitude[i] = math.Sqrt(gx*gx + gy*gy)
			direction[i] = quantizeDirection(math.Atan2(gy, gx))
		}
	}
	return magnitude, direction
}

// quantizeDirection maps an atan2 angle to one of the four direction bins.
func quantizeDirection(angle float64) uint8 {
	deg := angle * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return dir0
	case deg < 67.5:
		return dir45
	case deg < 112.5:
		return dir90
	default:
		return dir135
	}
}

// suppressNonMaxima keeps a pixel's magnitude only if it is ≥ both neighbors
// along its quantized gradient direction, zeroing it otherwise. Border pixels
// (no gradient computed) stay zero.
func suppressNonMaxima(magnitude []float64, direction []uint8, width, height int) []float64 {
	suppressed := make([]float64, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			mag := magnitude[i]

			var n1, n2 float64
			switch direction[i] {
			case dir0:
				n1 = magnitude[i-1]
				n2 = magnitude[i+1]
			case dir45:
				n1 = magnitude[i-width+1]
				n2 = magnitude[i+width-1]
			case dir90:
				n1 = magnitude[i-width]
				n2 = magnitude[i+width]
			default: // dir135
				n1 = magnitude[i-width-1]
				n2 = magnitude[i+width+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[i] = mag
			}
		}
	}
	return suppressed
}

// hysteresis classifies the suppressed magnitudes: values ≥ high are definite
// edges, values < low are discarded, and values in [low, high) are promoted
// only if 8-connected to a definite edge through other in-range pixels.
//
// Promotion is propagated to a fixed point with an explicit worklist seeded
// with every definite edge; each promoted weak pixel is pushed in turn, so
// chains of weak pixels are followed transitively.
func hysteresis(suppressed []float64, low, high float64, width, height int) []bool {
	edges := make([]bool, width*height)

	var worklist []int
	for i, v := range suppressed {
		if v >= high {
			edges[i] = true
			worklist = append(worklist, i)
		}
	}

	for len(worklist) > 0 {
		i := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		x := i % width
		y := i / width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx := x + dx
				ny := y + dy
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				j := ny*width + nx
				if edges[j] {
					continue
				}
				if v := suppressed[j]; v >= low && v < high {
					edges[j] = true
					worklist = append(worklist, j)
				}
			}
		}
	}
	return edges
}
