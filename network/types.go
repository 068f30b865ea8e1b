// SPDX-License-Identifier: MIT

// Package network models a set of stream networks built from segments that
// carry binary path identifiers, and answers the topological questions needed
// for along-network distances: which segments lie on each other's path to the
// outlet, where two flow paths meet, and how far apart two nodes are along
// the channel.
//
// Binary IDs:
//
//	The root (outlet) segment of every network is "1". A segment's children
//	append one digit to its binary ID ("10", "11"), so segment A is downstream
//	of segment B iff A.BinaryID is a prefix of B.BinaryID.
//
//	       "100"   "101"
//	          \     /
//	  "11"    "10"
//	     \     /
//	       "1"        ← outlet at the downstream end of "1"
//
// Errors (sentinel):
//
//	ErrSegmentID         – segment ID differs from its mapping key.
//	ErrBinaryID          – empty binary ID, non-binary digit, or a root other than "1".
//	ErrDuplicateBinaryID – two segments share a binary ID within one network.
//	ErrMissingParent     – a non-root segment whose parent binary ID is absent.
//	ErrSegmentGeometry   – negative length, UpDist < Length, or UpDist not
//	                       chaining with the parent's UpDist within tolerance.
//	ErrUnknownSegment    – lookup of a segment ID that is not in the network.
//	ErrEmptyNetwork      – New called with no segments.
package network

import "errors"

var (
	// ErrSegmentID indicates a segment whose ID differs from its mapping key.
	ErrSegmentID = errors.New("network: segment ID does not match its key")

	// ErrBinaryID indicates a malformed binary ID.
	ErrBinaryID = errors.New("network: malformed binary ID")

	// ErrDuplicateBinaryID indicates two segments with one binary ID in the same network.
	ErrDuplicateBinaryID = errors.New("network: duplicate binary ID")

	// ErrMissingParent indicates a non-root segment whose parent is absent.
	ErrMissingParent = errors.New("network: parent segment missing")

	// ErrSegmentGeometry indicates inconsistent segment length/upstream distance.
	ErrSegmentGeometry = errors.New("network: inconsistent segment geometry")

	// ErrUnknownSegment indicates a lookup of an unknown segment ID.
	ErrUnknownSegment = errors.New("network: unknown segment")

	// ErrEmptyNetwork indicates New was called with no segments.
	ErrEmptyNetwork = errors.New("network: no segments")
)

// RootBinaryID is the binary ID of the outlet segment of every network.
const RootBinaryID = "1"

// DefaultTolerance is the relative tolerance used when checking that a
// segment's downstream end meets its parent's upstream end.
const DefaultTolerance = 1e-6

// Segment is one reach of a stream network.
type Segment struct {
	// ID is the key of the segment in the mapping passed to New.
	ID string `yaml:"id"`
	// BinaryID encodes the path from the outlet ("1", "10", "101", ...).
	BinaryID string `yaml:"binary_id"`
	// NetworkID separates disjoint stream networks.
	NetworkID int `yaml:"network"`
	// Length is the along-channel length of the segment (≥ 0).
	Length float64 `yaml:"length"`
	// UpDist is the along-network distance from the outlet to the segment's upstream end.
	UpDist float64 `yaml:"up_dist"`
}

// DownDist returns the along-network distance from the outlet to the
// segment's downstream end.
func (s Segment) DownDist() float64 { return s.UpDist - s.Length }

// Option configures New.
type Option func(*config)

type config struct {
	tol float64
}

// WithTolerance sets the relative tolerance for geometry chaining checks.
// Panics on a negative or NaN value, like other option constructors here.
func WithTolerance(tol float64) Option {
	if tol < 0 || tol != tol {
		panic("network: tolerance must be a non-negative number")
	}

	return func(c *config) { c.tol = tol }
}
