// Package filter implements spatial-neighborhood operators over rasters:
// linear convolutions, order-statistic filters, an edge-preserving bilateral
// smoother, mathematical morphology, and a multi-stage Canny edge detector.
//
// # The Filter Capability
//
// Every operator satisfies the Filter interface: it mutates a raster in place
// through one Apply call and identifies itself by Name. Parameters are
// validated when the operator is constructed; a constructor returns a
// *ConfigError before any raster is touched, so a failed construction never
// leaves a raster partially updated.
//
// # Neighborhood Semantics
//
// Each Apply pass first takes a snapshot of the raster and reads exclusively
// from it, so no pixel of a pass observes another pixel's fresh output.
// Neighborhood offsets that fall outside the grid are omitted rather than
// padded: border pixels are computed over a smaller effective neighborhood
// than interior pixels. This is deliberate, observable behavior — for the
// morphological operators it means borders erode and dilate less aggressively
// than the interior.
//
// Every written sample is clamped into [0, 255].
//
// # Structuring Elements
//
// Morphological operators consume an Element, an immutable origin-centered
// offset set produced by Square (full square of a given radius) or Disk (the
// Gauss discretization of a Euclidean disk: integer offsets with
// dx²+dy² ≤ ρ²). An Element may be shared, without copying, by any number of
// operators; Opening and Closing pass one shared Element to both of their
// internal passes so the algebraic ordering opening(x) ≤ x ≤ closing(x)
// holds.
//
// # Algebraic Laws
//
// The implementation maintains, and the tests check, the standard lattice
// identities: erosion ≤ identity ≤ dilation, the erosion/dilation duality
// under complement, and the exact equivalence of the min/max rank filters
// with erosion/dilation over a square element of the same size.
package filter
