package filter

import (
	"math"

	"raster-processing/internal/raster"
)

// Bilateral is the edge-preserving smoother: each neighbor is weighted by the
// product of a spatial Gaussian over its distance and a range Gaussian over
// its intensity difference from the center pixel, both read from the pass
// snapshot. The output is the weight-normalized sum over the in-bounds
// window.
//
// As sigmaRange grows the range term tends to 1 for every neighbor and the
// filter converges to the plain Gaussian filter with sigmaSpatial.
type Bilateral struct {
	size         int
	sigmaSpatial float64
	sigmaRange   float64
	elem         Element
	spatial      []float64 // spatial weights, indexed (dy+radius)*size + (dx+radius)
}

// NewBilateral creates a bilateral filter over a size×size window. size must
// be odd and at least 3; both standard deviations must be positive.
func NewBilateral(size int, sigmaSpatial, sigmaRange float64) (*Bilateral, error) {
	if err := checkKernelSize("bilateral filter", size); err != nil {
		return nil, err
	}
	if err := checkSigma("bilateral filter", "sigmaSpatial", sigmaSpatial); err != nil {
		return nil, err
	}
	if err := checkSigma("bilateral filter", "sigmaRange", sigmaRange); err != nil {
		return nil, err
	}
	f := &Bilateral{
		size:         size,
		sigmaSpatial: sigmaSpatial,
		sigmaRange:   sigmaRange,
		elem:         mustSquare(size / 2),
		spatial:      make([]float64, size*size),
	}
	radius := size / 2
	twoSigmaSq := 2 * sigmaSpatial * sigmaSpatial
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			f.spatial[(dy+radius)*size+(dx+radius)] = math.Exp(-float64(dx*dx+dy*dy) / twoSigmaSq)
		}
	}
	return f, nil
}

// Name implements Filter.
func (f *Bilateral) Name() string { return "bilateral filter" }

// SigmaSpatial returns the configured spatial standard deviation.
func (f *Bilateral) SigmaSpatial() float64 { return f.sigmaSpatial }

// SigmaRange returns the configured range standard deviation.
func (f *Bilateral) SigmaRange() float64 { return f.sigmaRange }

// Apply implements Filter.
func (f *Bilateral) Apply(r *raster.Raster) error {
	radius := f.size / 2
	twoSigmaRangeSq := 2 * f.sigmaRange * f.sigmaRange
	applyNeighborhood(r, f.elem, func(center float64, samples []Sample) float64 {
		sum := 0.0
		weightSum := 0.0
		for _, s := range samples {
			diff := center - s.Value
			w := f.spatial[(s.DY+radius)*f.size+(s.DX+radius)] *
				math.Exp(-(diff*diff)/twoSigmaRangeSq)
			sum += w * s.Value
			weightSum += w
		}
		if weightSum == 0 {
			return center
		}
		return sum / weightSum
	})
	return nil
}
