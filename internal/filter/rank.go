package filter

import (
	"sort"

	"raster-processing/internal/raster"
)

// Median replaces each sample with the median of its square neighborhood.
//
// The in-bounds collection is sorted and the element at index (n−1)/2 is
// taken; on even-sized border collections this is the lower-middle element.
type Median struct {
	size int
	elem Element
}

// NewMedian creates a median filter over a size×size window. size must be
// odd and at least 3.
func NewMedian(size int) (*Median, error) {
	if err := checkKernelSize("median filter", size); err != nil {
		return nil, err
	}
	return &Median{size: size, elem: mustSquare(size / 2)}, nil
}

// Name implements Filter.
func (f *Median) Name() string { return "median filter" }

// Apply implements Filter.
func (f *Median) Apply(r *raster.Raster) error {
	values := make([]float64, 0, f.size*f.size)
	applyNeighborhood(r, f.elem, func(center float64, samples []Sample) float64 {
		if len(samples) == 0 {
			return center
		}
		values = values[:0]
		for _, s := range samples {
			values = append(values, s.Value)
		}
		sort.Float64s(values)
		return values[(len(values)-1)/2]
	})
	return nil
}

// Min replaces each sample with the minimum of its square neighborhood. It is
// numerically identical to Erosion with a square element of the same size —
// both run the exact same reduction.
type Min struct {
	elem Element
}

// NewMin creates a minimum filter over a size×size window. size must be odd
// and at least 3.
func NewMin(size int) (*Min, error) {
	if err := checkKernelSize("min filter", size); err != nil {
		return nil, err
	}
	return &Min{elem: mustSquare(size / 2)}, nil
}

// Name implements Filter.
func (f *Min) Name() string { return "min filter" }

// Apply implements Filter.
func (f *Min) Apply(r *raster.Raster) error {
	applyNeighborhood(r, f.elem, minReduce)
	return nil
}

// Max replaces each sample with the maximum of its square neighborhood; the
// dual of Min, identical to Dilation with a square element of the same size.
type Max struct {
	elem Element
}

// NewMax creates a maximum filter over a size×size window. size must be odd
// and at least 3.
func NewMax(size int) (*Max, error) {
	if err := checkKernelSize("max filter", size); err != nil {
		return nil, err
	}
	return &Max{elem: mustSquare(size / 2)}, nil
}

// Name implements Filter.
func (f *Max) Name() string { return "max filter" }

// Apply implements Filter.
func (f *Max) Apply(r *raster.Raster) error {
	applyNeighborhood(r, f.elem, maxReduce)
	return nil
}

// minReduce and maxReduce are shared with the morphological operators: the
// min/max rank filters and erosion/dilation over a square element are the
// same computation.

func minReduce(center float64, samples []Sample) float64 {
	if len(samples) == 0 {
		return center
	}
	min := samples[0].Value
	for _, s := range samples[1:] {
		if s.Value < min {
			min = s.Value
		}
	}
	return min
}

func maxReduce(center float64, samples []Sample) float64 {
	if len(samples) == 0 {
		return center
	}
	max := samples[0].Value
	for _, s := range samples[1:] {
		if s.Value > max {
			max = s.Value
		}
	}
	return max
}
