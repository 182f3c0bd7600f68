package filter

import "fmt"

// ConfigError reports an invalid construction parameter. It is returned by
// filter constructors before any raster is touched, so the caller can correct
// the parameter and retry; no default is ever substituted.
type ConfigError struct {
	Filter string // operator being constructed
	Param  string // offending parameter
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Filter, e.Param, e.Reason)
}

// errKernelSize returns the shared validation error for neighborhood sizes,
// which must describe an odd diameter of at least 3.
func errKernelSize(filter string, size int) error {
	return &ConfigError{
		Filter: filter,
		Param:  "size",
		Reason: fmt.Sprintf("must be odd and >= 3, got %d", size),
	}
}

// checkKernelSize validates an odd neighborhood diameter >= 3.
func checkKernelSize(filter string, size int) error {
	if size < 3 || size%2 == 0 {
		return errKernelSize(filter, size)
	}
	return nil
}

// checkSigma validates a strictly positive standard deviation.
func checkSigma(filter, param string, sigma float64) error {
	if sigma <= 0 {
		return &ConfigError{
			Filter: filter,
			Param:  param,
			Reason: fmt.Sprintf("must be positive, got %g", sigma),
		}
	}
	return nil
}
