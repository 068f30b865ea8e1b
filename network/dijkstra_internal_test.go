package network

import (
	"errors"
	"testing"
)

// TestDijkstra_NegativeWeightDetectedEarly uses the unexported builder: a
// Network never produces negative weights, but hand-built graphs can.
func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := newGraph()
	g.addEdge("A", "B", 1, "ab")
	g.addEdge("B", "C", -5, "bc")

	_, err := Dijkstra(g, Source("A"))
	if !errors.Is(err, ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_TieBreakDeterministic(t *testing.T) {
	g := newGraph()
	g.addEdge("S", "B", 1, "sb")
	g.addEdge("S", "A", 1, "sa")
	g.addEdge("A", "T", 1, "at")
	g.addEdge("B", "T", 1, "bt")

	dist, err := Dijkstra(g, Source("S"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["T"] != 2 {
		t.Fatalf("dist[T] = %g; want 2", dist["T"])
	}
}
