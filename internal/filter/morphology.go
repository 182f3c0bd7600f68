package filter

import (
	"fmt"

	"raster-processing/internal/raster"
)

// Erosion replaces each sample with the local infimum over its structuring
// element. Offsets falling outside the grid are omitted, so border pixels
// take their minimum over fewer samples and erode less aggressively than the
// interior — an accepted property of the boundary policy, not corrected.
type Erosion struct {
	elem Element
}

// NewErosion creates an erosion over a square element of the given diameter.
// size must be odd and at least 3.
func NewErosion(size int) (*Erosion, error) {
	if err := checkKernelSize("erosion", size); err != nil {
		return nil, err
	}
	return &Erosion{elem: mustSquare(size / 2)}, nil
}

// NewErosionElement creates an erosion over an explicit structuring element
// (typically a disk from Disk).
func NewErosionElement(elem Element) *Erosion {
	return &Erosion{elem: elem}
}

// Name implements Filter.
func (f *Erosion) Name() string { return fmt.Sprintf("erosion (%s)", f.elem.shape) }

// Apply implements Filter.
func (f *Erosion) Apply(r *raster.Raster) error {
	applyNeighborhood(r, f.elem, minReduce)
	return nil
}

// Dilation replaces each sample with the local supremum over its structuring
// element; the lattice dual of Erosion, with the same border discipline.
type Dilation struct {
	elem Element
}

// NewDilation creates a dilation over a square element of the given diameter.
// size must be odd and at least 3.
func NewDilation(size int) (*Dilation, error) {
	if err := checkKernelSize("dilation", size); err != nil {
		return nil, err
	}
	return &Dilation{elem: mustSquare(size / 2)}, nil
}

// NewDilationElement creates a dilation over an explicit structuring element.
func NewDilationElement(elem Element) *Dilation {
	return &Dilation{elem: elem}
}

// Name implements Filter.
func (f *Dilation) Name() string { return fmt.Sprintf("dilation (%s)", f.elem.shape) }

// Apply implements Filter.
func (f *Dilation) Apply(r *raster.Raster) error {
	applyNeighborhood(r, f.elem, maxReduce)
	return nil
}

// Opening is erosion followed by dilation. Both passes share one structuring
// element instance, which keeps the ordering opening(x) ≤ x intact whichever
// shape was supplied.
type Opening struct {
	erode  *Erosion
	dilate *Dilation
}

// NewOpening creates an opening over a square element of the given diameter.
// size must be odd and at least 3.
func NewOpening(size int) (*Opening, error) {
	if err := checkKernelSize("opening", size); err != nil {
		return nil, err
	}
	elem := mustSquare(size / 2)
	return NewOpeningElement(elem), nil
}

// NewOpeningElement creates an opening whose two passes share elem.
func NewOpeningElement(elem Element) *Opening {
	return &Opening{
		erode:  NewErosionElement(elem),
		dilate: NewDilationElement(elem),
	}
}

// Name implements Filter.
func (f *Opening) Name() string { return fmt.Sprintf("opening (%s)", f.erode.elem.shape) }

// Apply implements Filter.
func (f *Opening) Apply(r *raster.Raster) error {
	if err := f.erode.Apply(r); err != nil {
		return err
	}
	return f.dilate.Apply(r)
}

// Closing is dilation followed by erosion, sharing one structuring element
// the same way Opening does; x ≤ closing(x) for every pixel.
type Closing struct {
	dilate *Dilation
	erode  *Erosion
}

// NewClosing creates a closing over a square element of the given diameter.
// size must be odd and at least 3.
func NewClosing(size int) (*Closing, error) {
	if err := checkKernelSize("closing", size); err != nil {
		return nil, err
	}
	elem := mustSquare(size / 2)
	return NewClosingElement(elem), nil
}

// NewClosingElement creates a closing whose two passes share elem.
func NewClosingElement(elem Element) *Closing {
	return &Closing{
		dilate: NewDilationElement(elem),
		erode:  NewErosionElement(elem),
	}
}

// Name implements Filter.
func (f *Closing) Name() string { return fmt.Sprintf("closing (%s)", f.erode.elem.shape) }

// Apply implements Filter.
func (f *Closing) Apply(r *raster.Raster) error {
	if err := f.dilate.Apply(r); err != nil {
		return err
	}
	return f.erode.Apply(r)
}
