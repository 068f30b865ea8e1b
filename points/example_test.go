// Runnable examples for the points package, executed by “go test -run Example”.
package points_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/streamnet/geo"
	"github.com/katalvlaran/streamnet/matrix"
	"github.com/katalvlaran/streamnet/network"
	"github.com/katalvlaran/streamnet/points"
)

// ExampleSet_ComputeDistances places three gauges on a Y-shaped network:
//
//	 l (s10)     r (s11)
//	     \       /
//	      \     /
//	     m (s1)
//	        |
//	      outlet
//
// l and r sit on sibling tributaries, so they are not flow-connected and their
// hydrological distance runs through the fork at up_dist 10.
func ExampleSet_ComputeDistances() {
	segments := map[string]network.Segment{
		"s1":  {ID: "s1", BinaryID: "1", Length: 10, UpDist: 10},
		"s10": {ID: "s10", BinaryID: "10", Length: 5, UpDist: 15},
		"s11": {ID: "s11", BinaryID: "11", Length: 5, UpDist: 15},
	}
	pts := []points.Point{
		{ID: "m", Coord: geo.Coord{X: 0, Y: 0}, SegmentID: "s1", UpDist: 6},
		{ID: "l", Coord: geo.Coord{X: -3, Y: 4}, SegmentID: "s10", UpDist: 13},
		{ID: "r", Coord: geo.Coord{X: 3, Y: 4}, SegmentID: "s11", UpDist: 12},
	}

	s := points.New(pts, points.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := s.ComputeDistances(context.Background(), segments); err != nil {
		fmt.Println("error:", err)
		return
	}

	flow, _ := s.FlowMat()
	hyd, _ := s.DistHydro()
	down, _ := s.DistDownstream()
	g, _ := s.DistGeo()
	fmt.Println("flow: ", matrix.ToIntRows(flow))
	fmt.Println("hydro:", matrix.ToRows(hyd))
	fmt.Println("down: ", matrix.ToRows(down))
	fmt.Println("geo:  ", matrix.ToRows(g))
	// Output:
	// flow:  [[1 1 1] [1 1 0] [1 0 1]]
	// hydro: [[0 7 6] [7 0 5] [6 5 0]]
	// down:  [[0 0 0] [7 0 3] [6 2 0]]
	// geo:   [[0 5 5] [5 0 6] [5 6 0]]
}

// ExampleSet_SetPoints shows that replacing the points drops the matrices.
func ExampleSet_SetPoints() {
	segments := map[string]network.Segment{
		"main": {ID: "main", BinaryID: network.RootBinaryID, Length: 10, UpDist: 10},
	}
	s := points.New([]points.Point{{ID: "a", SegmentID: "main", UpDist: 1}},
		points.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_ = s.ComputeDistances(context.Background(), segments)
	fmt.Println(s.N(), s.Computed())

	s.SetPoints([]points.Point{
		{ID: "a", SegmentID: "main", UpDist: 1},
		{ID: "b", SegmentID: "main", UpDist: 2},
	})
	_, err := s.DistGeo()
	fmt.Println(s.N(), s.Computed(), err)
	// Output:
	// 1 true
	// 2 false points: distances not computed for current points
}

// ExampleParseConfig resolves a YAML configuration into Set options.
func ExampleParseConfig() {
	cfg, err := points.ParseConfig([]byte("geo_metric: haversine\nhydro_method: dijkstra\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	opts, err := cfg.Options(nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cfg.GeoMetric, cfg.HydroMethod, len(opts))
	// Output: haversine dijkstra 2
}
