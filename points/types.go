// SPDX-License-Identifier: MIT

// Package points holds a set of spatial points located on a stream network
// and the pairwise matrices derived from them.
//
// A Set owns its points and, once ComputeDistances has run, four n×n results:
//
//	FlowMat        – 1 where two points are flow-connected (one drains into
//	                 the other, or they share a segment), 0 otherwise; diagonal 1.
//	DistHydro      – along-network distance; symmetric, zero diagonal, +Inf
//	                 between points on different networks.
//	DistDownstream – asymmetric part of DistHydro: [i][j] is the distance from
//	                 point i downstream to the junction it shares with j.
//	                 DistHydro = DistDownstream + DistDownstreamᵀ.
//	DistGeo        – straight-line distance under the configured geo.Metric;
//	                 a metric (symmetric, zero diagonal, triangle inequality).
//
// Lifecycle:
//
//	New / SetPoints     – results absent; accessors return ErrNotComputed.
//	ComputeDistances    – builds all four matrices and swaps them in together.
//
// Inconsistent input fails loudly: a point whose segment is not in the
// mapping, or whose UpDist lies outside its segment, aborts the computation
// and leaves the previous results untouched.
//
// Errors (sentinel):
//
//	ErrNotComputed    – results requested before ComputeDistances (or after SetPoints).
//	ErrUnknownSegment – a point references a segment missing from the mapping.
//	ErrPointsChanged  – SetPoints ran while ComputeDistances was in flight.
//	ErrInvalidConfig  – a Config failed validation or named an unknown variant.
//
// Thread safety: all methods are safe for concurrent use. Returned matrices
// are read-only views of immutable snapshots.
package points

import (
	"errors"

	"github.com/katalvlaran/streamnet/geo"
	"github.com/katalvlaran/streamnet/hydro"
)

var (
	// ErrNotComputed indicates that results are absent.
	ErrNotComputed = errors.New("points: distances not computed for current points")

	// ErrUnknownSegment indicates a point on a segment missing from the mapping.
	ErrUnknownSegment = errors.New("points: point references unknown segment")

	// ErrPointsChanged indicates the points were replaced during a computation.
	ErrPointsChanged = errors.New("points: points changed during computation")

	// ErrInvalidConfig indicates an invalid Config.
	ErrInvalidConfig = errors.New("points: invalid configuration")
)

// Point is a spatial location on a stream network.
type Point struct {
	// ID is a caller-supplied label; it is not required to be unique.
	ID string
	// Coord is the geographic position.
	Coord geo.Coord
	// SegmentID is the key of the stream segment the point lies on.
	SegmentID string
	// UpDist is the along-network distance from the outlet to the point.
	UpDist float64
}

// location converts a point into the hydro package's location.
func (p Point) location() hydro.Location {
	return hydro.Location{SegmentID: p.SegmentID, UpDist: p.UpDist}
}
