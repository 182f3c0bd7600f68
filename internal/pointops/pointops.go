package pointops

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"raster-processing/internal/filter"
	"raster-processing/internal/raster"
)

// All point operators satisfy the same capability as the neighborhood
// filters.
var (
	_ filter.Filter = (*Negative)(nil)
	_ filter.Filter = (*Binarize)(nil)
	_ filter.Filter = (*Quantize)(nil)
	_ filter.Filter = (*Contrast)(nil)
	_ filter.Filter = (*Equalize)(nil)
)

// Negative inverts every sample: v → 255−v.
type Negative struct{}

// NewNegative creates a negation operator.
func NewNegative() *Negative { return &Negative{} }

// Name implements filter.Filter.
func (f *Negative) Name() string { return "negative" }

// Apply implements filter.Filter.
func (f *Negative) Apply(r *raster.Raster) error {
	forEachSample(r, func(v float64) float64 {
		return raster.MaxValue - v
	})
	return nil
}

// Binarize thresholds the raster's BT.601 luminance: pixels above the
// threshold become 255 on every channel, the rest become 0.
type Binarize struct {
	threshold float64
}

// NewBinarize creates a binarization operator with a threshold in [0, 255].
func NewBinarize(threshold float64) (*Binarize, error) {
	if threshold < 0 || threshold > raster.MaxValue {
		return nil, &filter.ConfigError{
			Filter: "binarize",
			Param:  "threshold",
			Reason: fmt.Sprintf("must lie in [0,255], got %g", threshold),
		}
	}
	return &Binarize{threshold: threshold}, nil
}

// Name implements filter.Filter.
func (f *Binarize) Name() string { return "binarize" }

// Apply implements filter.Filter.
func (f *Binarize) Apply(r *raster.Raster) error {
	forEachPixel(r, func(gray float64) float64 {
		if gray > f.threshold {
			return raster.MaxValue
		}
		return 0
	})
	return nil
}

// Quantize reduces the raster to a fixed number of uniform intensity levels,
// mapping each sample to the midpoint of its level.
type Quantize struct {
	levels int
}

// NewQuantize creates a quantization operator with levels in [2, 256].
func NewQuantize(levels int) (*Quantize, error) {
	if levels < 2 || levels > 256 {
		return nil, &filter.ConfigError{
			Filter: "quantize",
			Param:  "levels",
			Reason: fmt.Sprintf("must lie in [2,256], got %d", levels),
		}
	}
	return &Quantize{levels: levels}, nil
}

// Name implements filter.Filter.
func (f *Quantize) Name() string { return "quantize" }

// Apply implements filter.Filter.
func (f *Quantize) Apply(r *raster.Raster) error {
	step := 256.0 / float64(f.levels)
	forEachSample(r, func(v float64) float64 {
		level := int(v / step)
		if level > f.levels-1 {
			level = f.levels - 1
		}
		return float64(level)*step + step/2
	})
	return nil
}

// Contrast applies the linear rehaussement v → gain·v + bias, clamped.
type Contrast struct {
	gain float64
	bias float64
}

// NewContrast creates a contrast operator. gain must be positive; bias may be
// any offset.
func NewContrast(gain, bias float64) (*Contrast, error) {
	if gain <= 0 {
		return nil, &filter.ConfigError{
			Filter: "contrast",
			Param:  "gain",
			Reason: fmt.Sprintf("must be positive, got %g", gain),
		}
	}
	return &Contrast{gain: gain, bias: bias}, nil
}

// Name implements filter.Filter.
func (f *Contrast) Name() string { return "contrast" }

// Apply implements filter.Filter.
func (f *Contrast) Apply(r *raster.Raster) error {
	forEachSample(r, func(v float64) float64 {
		return f.gain*v + f.bias
	})
	return nil
}

// Equalize spreads the raster's luminance histogram across the full range
// using the classic CDF lookup table (with cdf-minimum normalization).
//
// Grayscale rasters are remapped directly. For RGB rasters the pixel is
// converted to HSL, its lightness is replaced by the equalized luminance, and
// the hue and saturation are kept, so colors shift in brightness without
// collapsing to gray.
type Equalize struct{}

// NewEqualize creates a histogram equalization operator.
func NewEqualize() *Equalize { return &Equalize{} }

// Name implements filter.Filter.
func (f *Equalize) Name() string { return "equalize" }

// Apply implements filter.Filter.
func (f *Equalize) Apply(r *raster.Raster) error {
	width, height, channels := r.Width(), r.Height(), r.Channels()
	total := width * height

	var hist [256]int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hist[toByte(pixelLuminance(r, x, y))]++
		}
	}

	var cdf [256]int
	acc := 0
	for i, n := range hist {
		acc += n
		cdf[i] = acc
	}
	cdfMin := 0
	for _, v := range cdf {
		if v != 0 {
			cdfMin = v
			break
		}
	}

	var lut [256]float64
	denom := total - cdfMin
	if denom < 1 {
		denom = 1
	}
	for i, v := range cdf {
		if v > cdfMin {
			lut[i] = float64(v-cdfMin) * raster.MaxValue / float64(denom)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray := pixelLuminance(r, x, y)
			target := lut[toByte(gray)]
			if channels == 1 {
				r.Set(x, y, 0, target)
				continue
			}
			c := colorful.Color{
				R: r.At(x, y, 0) / raster.MaxValue,
				G: r.At(x, y, 1) / raster.MaxValue,
				B: r.At(x, y, 2) / raster.MaxValue,
			}
			h, s, _ := c.Hsl()
			out := colorful.Hsl(h, s, target/raster.MaxValue)
			r.Set(x, y, 0, out.R*raster.MaxValue)
			r.Set(x, y, 1, out.G*raster.MaxValue)
			r.Set(x, y, 2, out.B*raster.MaxValue)
		}
	}
	return nil
}

// pixelLuminance returns the BT.601 luminance of a pixel, or the sample
// itself for grayscale rasters.
func pixelLuminance(r *raster.Raster, x, y int) float64 {
	if r.Channels() == 1 {
		return r.At(x, y, 0)
	}
	return raster.Luminance(r.At(x, y, 0), r.At(x, y, 1), r.At(x, y, 2))
}

// forEachSample rewrites every sample of every channel independently.
func forEachSample(r *raster.Raster, op func(v float64) float64) {
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			for c := 0; c < r.Channels(); c++ {
				r.Set(x, y, c, op(r.At(x, y, c)))
			}
		}
	}
}

// forEachPixel rewrites every pixel from its luminance, writing the result to
// all channels.
func forEachPixel(r *raster.Raster, op func(gray float64) float64) {
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			v := op(pixelLuminance(r, x, y))
			for c := 0; c < r.Channels(); c++ {
				r.Set(x, y, c, v)
			}
		}
	}
}

// toByte rounds a sample in [0, 255] to its 8-bit histogram bin.
func toByte(v float64) int {
	i := int(v + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}
