// SPDX-License-Identifier: MIT

package points

import (
	"slices"
	"sync"

	"github.com/katalvlaran/streamnet/matrix"
)

// results is one immutable set of derived matrices. It is never mutated
// after being installed on a Set.
type results struct {
	flow  *matrix.IntDense
	hydro *matrix.Dense
	down  *matrix.Dense
	geo   *matrix.Dense
}

// Set is a collection of points plus the matrices derived from them.
type Set struct {
	mu     sync.RWMutex
	points []Point
	gen    uint64   // bumped by SetPoints; detects replacement during compute
	res    *results // nil until computed for the current points
	cfg    settings
}

// New returns a Set holding a copy of pts. No matrices are computed.
func New(pts []Point, opts ...Option) *Set {
	cfg := defaultSettings()
	for _, fn := range opts {
		fn(&cfg)
	}
	cfg.logger = cfg.logger.With("component", "points")

	s := &Set{points: slices.Clone(pts), cfg: cfg}
	s.cfg.metrics.setPoints(len(pts))

	return s
}

// SetPoints replaces the points with a copy of pts and drops any computed
// matrices; accessors return ErrNotComputed until ComputeDistances runs again.
func (s *Set) SetPoints(pts []Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = slices.Clone(pts)
	s.gen++
	s.res = nil
	s.cfg.metrics.setPoints(len(pts))
}

// N returns the current number of points.
func (s *Set) N() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.points)
}

// Points returns a copy of the current points.
func (s *Set) Points() []Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.points)
}

// Computed reports whether matrices exist for the current points.
func (s *Set) Computed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.res != nil
}

// current returns the installed results or ErrNotComputed.
func (s *Set) current() (*results, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.res == nil {
		return nil, ErrNotComputed
	}

	return s.res, nil
}

// FlowMat returns the n×n flow-connectivity indicator.
func (s *Set) FlowMat() (matrix.IntReader, error) {
	r, err := s.current()
	if err != nil {
		return nil, err
	}

	return r.flow.ReadOnly(), nil
}

// DistHydro returns the n×n along-network distance matrix.
func (s *Set) DistHydro() (matrix.Reader, error) {
	r, err := s.current()
	if err != nil {
		return nil, err
	}

	return r.hydro.ReadOnly(), nil
}

// DistDownstream returns the n×n downstream-to-junction distance matrix.
func (s *Set) DistDownstream() (matrix.Reader, error) {
	r, err := s.current()
	if err != nil {
		return nil, err
	}

	return r.down.ReadOnly(), nil
}

// DistGeo returns the n×n straight-line distance matrix.
func (s *Set) DistGeo() (matrix.Reader, error) {
	r, err := s.current()
	if err != nil {
		return nil, err
	}

	return r.geo.ReadOnly(), nil
}
