// SPDX-License-Identifier: MIT

package points

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/streamnet/hydro"
	"github.com/katalvlaran/streamnet/matrix"
	"github.com/katalvlaran/streamnet/network"
)

// ComputeDistances builds the network from segments and computes FlowMat,
// DistHydro, DistDownstream and DistGeo for the current points.
//
// Implementation:
//   - Stage 1: snapshot points under the read lock.
//   - Stage 2: validate the network and every point's placement; nothing is
//     computed if any point references an unknown segment or lies off its
//     segment.
//   - Stage 3: fill the upper triangle row by row in parallel (errgroup,
//     limited to the configured workers). Row i writes cells (i, j) and
//     (j, i) for j ≥ i, so no two goroutines touch the same cell.
//   - Stage 4: install the results if the points were not replaced meanwhile.
//
// On error the previously installed results stay in place.
//
// Errors: network validation sentinels, ErrUnknownSegment, hydro.ErrOffSegment,
// ErrPointsChanged, or ctx.Err() on cancellation.
//
// Complexity: O(n²·D) for updist (D = binary-ID depth), plus one Dijkstra per
// distinct segment for the dijkstra method.
func (s *Set) ComputeDistances(ctx context.Context, segments map[string]network.Segment) error {
	start := time.Now()
	err := s.compute(ctx, segments, start)
	s.cfg.metrics.observe(err, time.Since(start))

	return err
}

func (s *Set) compute(ctx context.Context, segments map[string]network.Segment, start time.Time) error {
	// Stage 1: snapshot.
	s.mu.RLock()
	pts := slices.Clone(s.points)
	gen := s.gen
	s.mu.RUnlock()

	// Stage 2: network + placement checks.
	net, err := network.New(segments)
	if err != nil {
		return fmt.Errorf("points: build network: %w", err)
	}
	solver, err := s.cfg.method.Bind(net)
	if err != nil {
		return fmt.Errorf("points: bind %s: %w", s.cfg.method.Name(), err)
	}
	locs := make([]hydro.Location, len(pts))
	for i, p := range pts {
		if _, ok := net.Segment(p.SegmentID); !ok {
			return fmt.Errorf("%w: point %d (%q) on segment %q: %w",
				ErrUnknownSegment, i, p.ID, p.SegmentID, network.ErrUnknownSegment)
		}
		locs[i] = p.location()
		if _, err := solver.Pair(locs[i], locs[i]); err != nil {
			return fmt.Errorf("points: point %d (%q): %w", i, p.ID, err)
		}
	}

	// Stage 3: parallel fill.
	res, err := newResults(len(pts))
	if err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers)
	for i := range pts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return s.fillRow(res, solver, pts, locs, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// A cancellation that lands after the last row still counts.
	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 4: install.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		s.cfg.logger.Warn("discarding distances for replaced points",
			"n", len(pts), "method", s.cfg.method.Name())
		return ErrPointsChanged
	}
	s.res = res
	s.cfg.logger.Info("distances computed",
		"n", len(pts),
		"method", s.cfg.method.Name(),
		"metric", s.cfg.metric.Name(),
		"duration", time.Since(start),
	)

	return nil
}

// newResults allocates zeroed n×n matrices. Hydro matrices accept +Inf.
func newResults(n int) (*results, error) {
	flow, err := matrix.NewIntSquare(n)
	if err != nil {
		return nil, err
	}
	hyd, err := matrix.NewSquare(n, matrix.WithInf())
	if err != nil {
		return nil, err
	}
	down, err := matrix.NewSquare(n, matrix.WithInf())
	if err != nil {
		return nil, err
	}
	geoM, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	return &results{flow: flow, hydro: hyd, down: down, geo: geoM}, nil
}

// fillRow computes row i from the diagonal rightwards and mirrors each value
// into column i. The diagonal is flow 1 and distance 0, left from allocation
// for the distances.
func (s *Set) fillRow(res *results, solver hydro.Solver, pts []Point, locs []hydro.Location, i int) error {
	if err := res.flow.Set(i, i, 1); err != nil {
		return err
	}
	for j := i + 1; j < len(pts); j++ {
		d := s.cfg.metric.Distance(pts[i].Coord, pts[j].Coord)
		if err := setSym(res.geo, i, j, d); err != nil {
			return fmt.Errorf("points: geo distance %d-%d: %w", i, j, err)
		}

		p, err := solver.Pair(locs[i], locs[j])
		if err != nil {
			return fmt.Errorf("points: hydro distance %d-%d: %w", i, j, err)
		}
		if err := setSym(res.hydro, i, j, p.Total()); err != nil {
			return fmt.Errorf("points: hydro distance %d-%d: %w", i, j, err)
		}
		if err := res.down.Set(i, j, p.DownA); err != nil {
			return err
		}
		if err := res.down.Set(j, i, p.DownB); err != nil {
			return err
		}
		if p.Flow {
			if err := res.flow.Set(i, j, 1); err != nil {
				return err
			}
			if err := res.flow.Set(j, i, 1); err != nil {
				return err
			}
		}
	}

	return nil
}

// setSym writes v into (i, j) and (j, i).
func setSym(m *matrix.Dense, i, j int, v float64) error {
	if err := m.Set(i, j, v); err != nil {
		return err
	}

	return m.Set(j, i, v)
}
