// SPDX-License-Identifier: MIT

// Package hydro computes hydrological (along-network) distances between
// locations on a stream network.
//
// For two locations A and B the result is split at the junction where their
// flow paths meet:
//
//	DownA – distance travelled from A downstream to the junction.
//	DownB – distance travelled from B downstream to the junction.
//	Total – DownA + DownB, the symmetric hydrological distance.
//
// Policy:
//   - Flow-connected (one segment lies on the other's outlet path): the
//     junction is the downstream location itself, so the downstream side is 0
//     and the upstream side carries the whole distance. Flow is true.
//   - Not flow-connected, same network: both sides travel to the upstream end
//     of the most upstream shared segment. Flow is false.
//   - Different networks: DownA = DownB = +Inf, Flow is false.
//
// Methods (constructible by name through NewRegistry):
//
//	updist   – arithmetic on upstream distances carried by points and segments. O(D) per pair.
//	dijkstra – shortest paths over the junction graph built from segment lengths;
//	           agrees with updist whenever segment UpDist values chain consistently.
package hydro

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/streamnet/factory"
	"github.com/katalvlaran/streamnet/network"
)

// Names under which the built-in methods are registered.
const (
	NameUpDist   = "updist"
	NameDijkstra = "dijkstra"
)

// locationTolerance is the relative slack allowed when checking that a
// location lies within its segment.
const locationTolerance = 1e-9

var (
	// ErrOffSegment indicates a location whose UpDist falls outside its segment.
	ErrOffSegment = errors.New("hydro: location outside its segment")

	// ErrNilNetwork indicates Bind was called with a nil network.
	ErrNilNetwork = errors.New("hydro: network is nil")
)

// Location is a position on the stream network.
type Location struct {
	SegmentID string
	UpDist    float64 // along-network distance from the outlet
}

// Pair is the hydrological relation between two locations A and B.
type Pair struct {
	Flow  bool    // A and B are flow-connected
	DownA float64 // A → junction
	DownB float64 // B → junction
}

// Total returns the symmetric along-network distance.
func (p Pair) Total() float64 { return p.DownA + p.DownB }

// Method is a named strategy for hydrological distances.
type Method interface {
	// Name returns the registry name of the method.
	Name() string
	// Bind prepares a Solver for one network. The network must not change
	// while the Solver is in use.
	Bind(net *network.Network) (Solver, error)
}

// Solver answers pair queries on a bound network. Implementations are safe
// for concurrent use.
type Solver interface {
	Pair(a, b Location) (Pair, error)
}

// NewRegistry returns a registry holding the built-in methods.
func NewRegistry(opts ...factory.Option) *factory.Registry[string, Method] {
	r := factory.New[string, Method](opts...)
	factory.MustRegister(r, NameUpDist, func() Method { return UpDist{} })
	factory.MustRegister(r, NameDijkstra, func() Method { return Dijkstra{} })

	return r
}

// disconnected is the Pair for locations on different networks.
func disconnected() Pair {
	return Pair{Flow: false, DownA: math.Inf(1), DownB: math.Inf(1)}
}

// locate resolves a location's segment and checks the location lies on it.
func locate(net *network.Network, loc Location) (network.Segment, error) {
	s, ok := net.Segment(loc.SegmentID)
	if !ok {
		return network.Segment{}, fmt.Errorf("%w: %q", network.ErrUnknownSegment, loc.SegmentID)
	}
	slack := locationTolerance * math.Max(1, math.Abs(s.UpDist))
	if math.IsNaN(loc.UpDist) || loc.UpDist < s.DownDist()-slack || loc.UpDist > s.UpDist+slack {
		return network.Segment{}, fmt.Errorf("%w: up_dist %g not in [%g, %g] of segment %q",
			ErrOffSegment, loc.UpDist, s.DownDist(), s.UpDist, s.ID)
	}

	return s, nil
}

// flowPair orders two flow-connected locations: the upstream one (greater
// UpDist) carries the whole distance d.
func flowPair(a, b Location, d float64) Pair {
	if a.UpDist >= b.UpDist {
		return Pair{Flow: true, DownA: d, DownB: 0}
	}

	return Pair{Flow: true, DownA: 0, DownB: d}
}
