// SPDX-License-Identifier: MIT

package hydro

import (
	"math"

	"github.com/katalvlaran/streamnet/network"
)

// UpDist derives hydrological distances from upstream distances alone:
// the junction of two flow paths sits at the upstream end of their most
// upstream shared segment, whose UpDist is known.
type UpDist struct{}

// Name implements Method.
func (UpDist) Name() string { return NameUpDist }

// Bind implements Method.
func (UpDist) Bind(net *network.Network) (Solver, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	return upDistSolver{net: net}, nil
}

type upDistSolver struct {
	net *network.Network
}

// Pair implements Solver.
//
// Complexity: O(D) where D is the binary-ID depth (junction prefix scan).
func (s upDistSolver) Pair(a, b Location) (Pair, error) {
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

	j, _, err := s.net.Junction(sa.ID, sb.ID)
	if err != nil {
		return Pair{}, err
	}
	if j.ID == sa.ID || j.ID == sb.ID {
		return flowPair(a, b, math.Abs(a.UpDist-b.UpDist)), nil
	}

	return Pair{
		Flow:  false,
		DownA: math.Max(0, a.UpDist-j.UpDist),
		DownB: math.Max(0, b.UpDist-j.UpDist),
	}, nil
}
