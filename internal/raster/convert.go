package raster

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
)

// Luminance converts 8-bit-range RGB components to a single intensity using
// the ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
func Luminance(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// FromImage decodes an image.Image into a raster with the requested channel
// count.
//
// For channels == 3 the RGB components are taken directly (8-bit range).
// For channels == 1 each pixel is reduced to BT.601 luminance. The alpha
// channel is discarded in both cases.
//
// Returns a *DimensionError if the image is empty or channels is not 1 or 3.
func FromImage(img image.Image, channels int) (*Raster, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	r, err := New(width, height, channels)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cr, cg, cb, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(cr >> 8)
			gf := float64(cg >> 8)
			bf := float64(cb >> 8)
			if channels == 1 {
				r.Set(x, y, 0, Luminance(rf, gf, bf))
			} else {
				r.Set(x, y, 0, rf)
				r.Set(x, y, 1, gf)
				r.Set(x, y, 2, bf)
			}
		}
	}
	return r, nil
}

// ToImage renders the raster as a standard image: *image.Gray for one
// channel, *image.NRGBA (fully opaque) for three. Samples are rounded to the
// nearest 8-bit value.
func ToImage(r *Raster) image.Image {
	rect := image.Rect(0, 0, r.Width(), r.Height())

	if r.Channels() == 1 {
		out := image.NewGray(rect)
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				out.SetGray(x, y, color.Gray{Y: toUint8(r.At(x, y, 0))})
			}
		}
		return out
	}

	out := image.NewNRGBA(rect)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: toUint8(r.At(x, y, 0)),
				G: toUint8(r.At(x, y, 1)),
				B: toUint8(r.At(x, y, 2)),
				A: 255,
			})
		}
	}
	return out
}

// Open loads an image file (PNG, JPEG, or GIF) and decodes it into a raster
// with the requested channel count.
func Open(path string, channels int) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return FromImage(img, channels)
}

// toUint8 rounds a sample in [0, 255] to the nearest 8-bit value.
func toUint8(v float64) uint8 {
	i := int(v + 0.5)
	if i < 0 {
		i = 0
	}
	if i > 255 {
		i = 255
	}
	return uint8(i)
}
