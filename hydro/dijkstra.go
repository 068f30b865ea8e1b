// SPDX-License-Identifier: MIT

package hydro

import (
	"math"
	"sync"

	"github.com/katalvlaran/streamnet/network"
)

// Dijkstra measures hydrological distances on the junction graph using
// segment lengths only. A location sits on its segment at offset
// UpDist − DownDist from the segment's downstream node.
//
// Shortest-path trees are computed once per source node and cached for the
// lifetime of the Solver, so a full n×n sweep runs at most one Dijkstra per
// distinct segment that carries a location.
type Dijkstra struct{}

// Name implements Method.
func (Dijkstra) Name() string { return NameDijkstra }

// Bind implements Method.
func (Dijkstra) Bind(net *network.Network) (Solver, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	return &dijkstraSolver{
		net:   net,
		g:     net.Graph(),
		trees: make(map[string]*tree),
	}, nil
}

// tree is one cached single-source result, computed exactly once.
type tree struct {
	once sync.Once
	dist map[string]float64
	err  error
}

type dijkstraSolver struct {
	net *network.Network
	g   *network.Graph

	mu    sync.Mutex
	trees map[string]*tree // source node → shortest-path tree
}

// distance returns the graph distance between two nodes. The source tree is
// built outside the map lock so different sources run in parallel.
func (s *dijkstraSolver) distance(from, to string) (float64, error) {
	if from == to {
		return 0, nil
	}
	s.mu.Lock()
	t, ok := s.trees[from]
	if !ok {
		t = &tree{}
		s.trees[from] = t
	}
	s.mu.Unlock()

	t.once.Do(func() {
		t.dist, t.err = network.Dijkstra(s.g, network.Source(from))
	})
	if t.err != nil {
		return 0, t.err
	}

	return t.dist[to], nil
}

// offset is the distance from the segment's downstream node up to loc,
// clamped to the segment.
func offset(s network.Segment, loc Location) float64 {
	return math.Min(s.Length, math.Max(0, loc.UpDist-s.DownDist()))
}

// Pair implements Solver.
func (s *dijkstraSolver) Pair(a, b Location) (Pair, error) {
	sa, err := locate(s.net, a)
	if err != nil {
		return Pair{}, err
	}
	sb, err := locate(s.net, b)
	if err != nil {
		return Pair{}, err
	}
	if sa.NetworkID != sb.NetworkID {
		return disconnected(), nil
	}

	offA, offB := offset(sa, a), offset(sb, b)
	if sa.ID == sb.ID {
		return flowPair(a, b, math.Abs(offA-offB)), nil
	}

	j, _, err := s.net.Junction(sa.ID, sb.ID)
	if err != nil {
		return Pair{}, err
	}

	switch j.ID {
	case sa.ID:
		// a is downstream: b walks down to sa's upstream node, then down to a.
		d, err := s.distance(network.DownstreamNode(sb), network.UpstreamNode(sa))
		if err != nil {
			return Pair{}, err
		}
		return Pair{Flow: true, DownA: 0, DownB: offB + d + (sa.Length - offA)}, nil

	case sb.ID:
		d, err := s.distance(network.DownstreamNode(sa), network.UpstreamNode(sb))
		if err != nil {
			return Pair{}, err
		}
		return Pair{Flow: true, DownA: offA + d + (sb.Length - offB), DownB: 0}, nil
	}

	junction := network.UpstreamNode(j)
	da, err := s.distance(network.DownstreamNode(sa), junction)
	if err != nil {
		return Pair{}, err
	}
	db, err := s.distance(network.DownstreamNode(sb), junction)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Flow: false, DownA: offA + da, DownB: offB + db}, nil
}
