// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"
)

// Edge is one undirected, weighted connection in a junction Graph.
type Edge struct {
	From    string  // node ID
	To      string  // node ID
	Weight  float64 // along-channel length
	Segment string  // ID of the segment the edge represents
}

// Graph is an undirected weighted graph of stream nodes. Nodes are segment
// upstream ends plus one outlet per network; each segment is an edge between
// its upstream node and its downstream node.
//
// A Graph is read-only once built by Network.Graph.
type Graph struct {
	adj map[string][]Edge // node → incident edges, stored from the node's side
}

// newGraph returns an empty graph.
func newGraph() *Graph { return &Graph{adj: make(map[string][]Edge)} }

// addEdge inserts an undirected edge u—v, recording it from both sides.
func (g *Graph) addEdge(u, v string, w float64, seg string) {
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: w, Segment: seg})
	g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w, Segment: seg})
}

// HasVertex reports whether id is a node of g.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all node IDs in lexicographic order.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Neighbors returns the edges incident to id, each oriented away from id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	es, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return slices.Clone(es), nil
}

// Edges returns every undirected edge once, with From < To lexicographically.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, u := range g.Vertices() {
		for _, e := range g.adj[u] {
			if e.From < e.To { // each edge appears on both endpoints; keep one side
				out = append(out, e)
			}
		}
	}

	return out
}

// UpstreamNode returns the graph node at the upstream end of a segment.
func UpstreamNode(s Segment) string {
	return fmt.Sprintf("n:%d:%s", s.NetworkID, s.BinaryID)
}

// DownstreamNode returns the graph node at the downstream end of a segment:
// the parent's upstream node, or the network outlet for the root.
func DownstreamNode(s Segment) string {
	if s.BinaryID == RootBinaryID {
		return OutletNode(s.NetworkID)
	}

	return fmt.Sprintf("n:%d:%s", s.NetworkID, parentOf(s.BinaryID))
}

// OutletNode returns the outlet node of a network.
func OutletNode(networkID int) string { return fmt.Sprintf("o:%d", networkID) }

// Graph returns the junction graph of the network, built on first use.
//
// Complexity: O(S) on first call, O(1) afterwards.
func (n *Network) Graph() *Graph {
	n.graphOnce.Do(func() {
		g := newGraph()
		for _, s := range n.segments {
			g.addEdge(UpstreamNode(s), DownstreamNode(s), s.Length, s.ID)
		}
		n.graph = g
	})

	return n.graph
}
