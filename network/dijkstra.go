// SPDX-License-Identifier: MIT

package network

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("network: source node ID is empty")

	// ErrNilGraph indicates that a nil *Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("network: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("network: node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("network: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("network: MaxDistance must be non-negative")
)

// DijkstraOptions configures Dijkstra.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// MaxDistance – nodes farther than this are left at +Inf. Default +Inf (no cap).
type DijkstraOptions struct {
	Source      string
	MaxDistance float64
}

// DijkstraOption is a functional option for Dijkstra.
type DijkstraOption func(*DijkstraOptions)

// Source sets the starting node.
func Source(id string) DijkstraOption {
	return func(o *DijkstraOptions) { o.Source = id }
}

// WithMaxDistance caps exploration. Panics on a negative or NaN value to
// signal invalid configuration early.
func WithMaxDistance(d float64) DijkstraOption {
	if d < 0 || math.IsNaN(d) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *DijkstraOptions) { o.MaxDistance = d }
}

// Dijkstra computes shortest along-channel distances from the source node to
// every node of g. Unreachable nodes (other networks, or beyond MaxDistance)
// map to +Inf.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity: Time O((V + E) log V), Space O(V + E).
func Dijkstra(g *Graph, opts ...DijkstraOption) (map[string]float64, error) {
	cfg := DijkstraOptions{MaxDistance: math.Inf(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	// Fail fast on negative weights before touching the heap.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		maxDist: cfg.MaxDistance,
		dist:    make(map[string]float64, len(g.adj)),
		visited: make(map[string]bool, len(g.adj)),
		pq:      make(nodePQ, 0, len(g.adj)),
	}
	r.init(cfg.Source)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph
	maxDist float64
	dist    map[string]float64 // node → best known distance
	visited map[string]bool    // node → distance finalized
	pq      nodePQ
}

// init sets every distance to +Inf and seeds the heap with the source at 0.
func (r *runner) init(source string) {
	for id := range r.g.adj {
		r.dist[id] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops nodes in distance order and relaxes their edges until the heap
// is empty or the next distance exceeds maxDist. Stale heap entries are
// skipped (lazy decrease-key).
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.maxDist {
			break
		}
		r.visited[u] = true

		for _, e := range r.g.adj[u] {
			nd := r.dist[u] + e.Weight
			if nd > r.maxDist || nd >= r.dist[e.To] {
				continue
			}
			r.dist[e.To] = nd
			heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
		}
	}
}

// nodeItem is a heap entry: a node and a candidate distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id for
// deterministic pop order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
