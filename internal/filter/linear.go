package filter

import (
	"math"

	"raster-processing/internal/raster"
)

// Mean replaces each sample with the arithmetic mean of its square
// neighborhood. Border pixels average over their in-bounds neighbors only.
type Mean struct {
	elem Element
}

// NewMean creates a mean filter over a size×size window. size must be odd
// and at least 3.
func NewMean(size int) (*Mean, error) {
	if err := checkKernelSize("mean filter", size); err != nil {
		return nil, err
	}
	return &Mean{elem: mustSquare(size / 2)}, nil
}

// Name implements Filter.
func (f *Mean) Name() string { return "mean filter" }

// Apply implements Filter.
func (f *Mean) Apply(r *raster.Raster) error {
	applyNeighborhood(r, f.elem, func(center float64, samples []Sample) float64 {
		if len(samples) == 0 {
			return center
		}
		sum := 0.0
		for _, s := range samples {
			sum += s.Value
		}
		return sum / float64(len(samples))
	})
	return nil
}

// Gaussian smooths the raster with the isotropic kernel
// w(dx,dy) = exp(−(dx²+dy²)/(2σ²)).
//
// The kernel is re-normalized per pixel over the in-bounds offsets, so the
// used weights always sum to 1 and brightness is conserved even at the
// border, where part of the window is omitted. A spatially constant raster
// is a fixed point of this filter.
type Gaussian struct {
	size    int
	sigma   float64
	elem    Element
	weights []float64 // unnormalized, indexed (dy+radius)*size + (dx+radius)
}

// NewGaussian creates a Gaussian filter over a size×size window with
// standard deviation sigma. size must be odd and at least 3; sigma must be
// positive.
func NewGaussian(size int, sigma float64) (*Gaussian, error) {
	if err := checkKernelSize("gaussian filter", size); err != nil {
		return nil, err
	}
	if err := checkSigma("gaussian filter", "sigma", sigma); err != nil {
		return nil, err
	}
	f := &Gaussian{
		size:    size,
		sigma:   sigma,
		elem:    mustSquare(size / 2),
		weights: make([]float64, size*size),
	}
	radius := size / 2
	twoSigmaSq := 2 * sigma * sigma
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			f.weights[(dy+radius)*size+(dx+radius)] = math.Exp(-float64(dx*dx+dy*dy) / twoSigmaSq)
		}
	}
	return f, nil
}

// Name implements Filter.
func (f *Gaussian) Name() string { return "gaussian filter" }

// Sigma returns the configured standard deviation.
func (f *Gaussian) Sigma() float64 { return f.sigma }

// Apply implements Filter.
func (f *Gaussian) Apply(r *raster.Raster) error {
	radius := f.size / 2
	applyNeighborhood(r, f.elem, func(center float64, samples []Sample) float64 {
		sum := 0.0
		weightSum := 0.0
		for _, s := range samples {
			w := f.weights[(s.DY+radius)*f.size+(s.DX+radius)]
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
