// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// binaryKey addresses a segment by (network, binary ID).
type binaryKey struct {
	net int
	bid string
}

// Network is an immutable, validated collection of stream segments.
// All methods are safe for concurrent use.
type Network struct {
	segments []Segment         // sorted by (NetworkID, len(BinaryID), BinaryID)
	byID     map[string]int    // segment ID → index
	byBinary map[binaryKey]int // (network, binary ID) → index
	paths    []*roaring.Bitmap // index → indices of the segment and all its downstream ancestors

	graphOnce sync.Once
	graph     *Graph
}

// New validates segments and builds the topology indexes.
//
// Implementation:
//   - Stage 1: visit keys in sorted order and check each segment on its own
//     (ID, binary ID alphabet/root, length); fill empty IDs from the key.
//   - Stage 2: sort by (network, depth, binary ID) so parents precede children;
//     reject duplicate binary IDs.
//   - Stage 3: resolve each parent, check UpDist chaining, and derive the
//     outlet path bitmap as parent path ∪ {self}.
//
// The first violation in that fixed order is returned, wrapped with the
// offending segment ID.
//
// Complexity: O(S log S + S·D) time where D is the maximum binary-ID depth.
func New(segments map[string]Segment, opts ...Option) (*Network, error) {
	cfg := config{tol: DefaultTolerance}
	for _, fn := range opts {
		fn(&cfg)
	}
	if len(segments) == 0 {
		return nil, ErrEmptyNetwork
	}

	// Stage 1: per-segment checks in deterministic key order.
	keys := make([]string, 0, len(segments))
	for k := range segments {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	list := make([]Segment, 0, len(keys))
	for _, k := range keys {
		s := segments[k]
		if s.ID == "" {
			s.ID = k
		}
		if s.ID != k {
			return nil, fmt.Errorf("segment %q (key %q): %w", s.ID, k, ErrSegmentID)
		}
		if err := checkBinaryID(s.BinaryID); err != nil {
			return nil, fmt.Errorf("segment %q binary ID %q: %w", s.ID, s.BinaryID, err)
		}
		if s.Length < 0 || math.IsNaN(s.Length) || math.IsInf(s.Length, 0) {
			return nil, fmt.Errorf("segment %q length %g: %w", s.ID, s.Length, ErrSegmentGeometry)
		}
		if math.IsNaN(s.UpDist) || math.IsInf(s.UpDist, 0) || s.UpDist < s.Length-slack(cfg.tol, s.Length) {
			return nil, fmt.Errorf("segment %q up_dist %g < length %g: %w", s.ID, s.UpDist, s.Length, ErrSegmentGeometry)
		}
		list = append(list, s)
	}

	// Stage 2: parents first.
	slices.SortFunc(list, func(a, b Segment) int {
		if a.NetworkID != b.NetworkID {
			return a.NetworkID - b.NetworkID
		}
		if len(a.BinaryID) != len(b.BinaryID) {
			return len(a.BinaryID) - len(b.BinaryID)
		}
		return strings.Compare(a.BinaryID, b.BinaryID)
	})

	n := &Network{
		segments: list,
		byID:     make(map[string]int, len(list)),
		byBinary: make(map[binaryKey]int, len(list)),
		paths:    make([]*roaring.Bitmap, len(list)),
	}
	for i, s := range list {
		key := binaryKey{net: s.NetworkID, bid: s.BinaryID}
		if prev, dup := n.byBinary[key]; dup {
			return nil, fmt.Errorf("segments %q and %q share %q in network %d: %w",
				list[prev].ID, s.ID, s.BinaryID, s.NetworkID, ErrDuplicateBinaryID)
		}
		n.byBinary[key] = i
		n.byID[s.ID] = i
	}

	// Stage 3: parent resolution, geometry chaining, outlet paths.
	for i, s := range list {
		path := roaring.New()
		downEnd := 0.0 // the root's downstream end is the outlet
		if s.BinaryID != RootBinaryID {
			p, ok := n.byBinary[binaryKey{net: s.NetworkID, bid: parentOf(s.BinaryID)}]
			if !ok {
				return nil, fmt.Errorf("segment %q (network %d, binary ID %q): %w",
					s.ID, s.NetworkID, s.BinaryID, ErrMissingParent)
			}
			path = n.paths[p].Clone() // p < i: parents sort first
			downEnd = list[p].UpDist
		}
		if math.Abs(s.DownDist()-downEnd) > slack(cfg.tol, downEnd) {
			return nil, fmt.Errorf("segment %q downstream end %g does not meet %g: %w",
				s.ID, s.DownDist(), downEnd, ErrSegmentGeometry)
		}
		path.Add(uint32(i))
		n.paths[i] = path
	}

	return n, nil
}

// checkBinaryID validates the alphabet and the root digit.
func checkBinaryID(bid string) error {
	if bid == "" {
		return ErrBinaryID
	}
	if bid[0] != RootBinaryID[0] {
		return ErrBinaryID
	}
	for i := 1; i < len(bid); i++ {
		if bid[i] != '0' && bid[i] != '1' {
			return ErrBinaryID
		}
	}

	return nil
}

// parentOf drops the last digit. Callers never pass the root.
func parentOf(bid string) string { return bid[:len(bid)-1] }

// slack scales a relative tolerance by the magnitude it is compared against.
func slack(tol, ref float64) float64 { return tol * math.Max(1, math.Abs(ref)) }

// Len returns the number of segments.
func (n *Network) Len() int { return len(n.segments) }

// Segments returns a copy of all segments ordered by (network, depth, binary ID).
func (n *Network) Segments() []Segment { return slices.Clone(n.segments) }

// Segment returns the segment with the given ID.
func (n *Network) Segment(id string) (Segment, bool) {
	i, ok := n.byID[id]
	if !ok {
		return Segment{}, false
	}

	return n.segments[i], true
}

// lookup returns the index of id or a wrapped ErrUnknownSegment.
func (n *Network) lookup(id string) (int, error) {
	i, ok := n.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSegment, id)
	}

	return i, nil
}

// Path returns the IDs of id and every segment downstream of it, ordered from
// the outlet up to id itself.
func (n *Network) Path(id string) ([]string, error) {
	i, err := n.lookup(id)
	if err != nil {
		return nil, err
	}
	bm := n.paths[i]
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, n.segments[it.Next()].ID)
	}
	// Indices sort by depth within a network, so iteration is already outlet-first.

	return out, nil
}

// FlowConnected reports whether one segment lies on the other's path to the
// outlet, i.e. water flows from one into the other. A segment is
// flow-connected to itself.
func (n *Network) FlowConnected(a, b string) (bool, error) {
	ia, err := n.lookup(a)
	if err != nil {
		return false, err
	}
	ib, err := n.lookup(b)
	if err != nil {
		return false, err
	}

	return n.paths[ia].Contains(uint32(ib)) || n.paths[ib].Contains(uint32(ia)), nil
}

// Downstream reports whether a lies on b's path to the outlet (a == b counts).
func (n *Network) Downstream(a, b string) (bool, error) {
	ia, err := n.lookup(a)
	if err != nil {
		return false, err
	}
	ib, err := n.lookup(b)
	if err != nil {
		return false, err
	}

	return n.paths[ib].Contains(uint32(ia)), nil
}

// Junction returns the most upstream segment shared by the outlet paths of a
// and b. Its upstream end is where the two flow paths meet. ok is false when
// the segments belong to different networks.
//
// Complexity: O(D) for the common-prefix scan.
func (n *Network) Junction(a, b string) (junction Segment, ok bool, err error) {
	ia, err := n.lookup(a)
	if err != nil {
		return Segment{}, false, err
	}
	ib, err := n.lookup(b)
	if err != nil {
		return Segment{}, false, err
	}
	sa, sb := n.segments[ia], n.segments[ib]
	if sa.NetworkID != sb.NetworkID {
		return Segment{}, false, nil
	}

	k := 0
	for k < len(sa.BinaryID) && k < len(sb.BinaryID) && sa.BinaryID[k] == sb.BinaryID[k] {
		k++
	}
	// Every prefix of a validated binary ID is an existing ancestor, and all
	// IDs in one network start with the root digit, so k ≥ 1.
	j := n.byBinary[binaryKey{net: sa.NetworkID, bid: sa.BinaryID[:k]}]

	return n.segments[j], true, nil
}
