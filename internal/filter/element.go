package filter

import (
	"fmt"
	"math"
)

// Offset is one relative neighborhood position (dx, dy).
type Offset struct {
	DX int
	DY int
}

// Element is an immutable, origin-centered structuring element: the set of
// relative offsets a morphological operator (or any neighborhood pass) visits
// around each pixel.
//
// Both shapes contain the origin (0,0) and are symmetric about it. An Element
// has no mutable state and may be shared freely between operators.
type Element struct {
	offsets []Offset
	radius  int
	shape   string
}

// Square returns the full square element {(dx,dy) : |dx|,|dy| <= radius}.
//
// Returns a *ConfigError if radius is not positive.
func Square(radius int) (Element, error) {
	if radius <= 0 {
		return Element{}, &ConfigError{
			Filter: "structuring element",
			Param:  "radius",
			Reason: fmt.Sprintf("must be positive, got %d", radius),
		}
	}
	offsets := make([]Offset, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			offsets = append(offsets, Offset{dx, dy})
		}
	}
	return Element{offsets: offsets, radius: radius, shape: "square"}, nil
}

// Disk returns the Gauss discretization of the Euclidean disk of radius rho:
// the integer offsets satisfying dx²+dy² <= ρ², bounded by |dx|,|dy| <= ⌈ρ⌉.
//
// Returns a *ConfigError if rho is not positive.
func Disk(rho float64) (Element, error) {
	if rho <= 0 {
		return Element{}, &ConfigError{
			Filter: "structuring element",
			Param:  "rho",
			Reason: fmt.Sprintf("must be positive, got %g", rho),
		}
	}
	bound := int(math.Ceil(rho))
	rhoSq := rho * rho
	var offsets []Offset
	for dy := -bound; dy <= bound; dy++ {
		for dx := -bound; dx <= bound; dx++ {
			if float64(dx*dx+dy*dy) <= rhoSq {
				offsets = append(offsets, Offset{dx, dy})
			}
		}
	}
	return Element{offsets: offsets, radius: bound, shape: "disk"}, nil
}

// Offsets returns a copy of the element's offset set.
func (e Element) Offsets() []Offset {
	out := make([]Offset, len(e.offsets))
	copy(out, e.offsets)
	return out
}

// Radius returns the element's bounding radius.
func (e Element) Radius() int { return e.radius }

// Size returns the number of offsets in the element.
func (e Element) Size() int { return len(e.offsets) }

// Shape returns "square" or "disk".
func (e Element) Shape() string { return e.shape }

// mustSquare builds a square element from an already-validated radius.
// Only for internal use after checkKernelSize has accepted the diameter.
func mustSquare(radius int) Element {
	e, err := Square(radius)
	if err != nil {
		panic(err)
	}
	return e
}
