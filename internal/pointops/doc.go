// Package pointops provides elementwise raster transforms: negation,
// binarization, uniform quantization, linear contrast adjustment, and
// histogram equalization.
//
// These operators touch every sample independently — no neighborhood, no
// ordering concern — but expose the same Apply/Name capability as the
// neighborhood filters so a caller can run them through one pipeline. All
// written samples are clamped into [0, 255] by the raster itself.
package pointops
