package points_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamnet/geo"
	"github.com/katalvlaran/streamnet/points"
)

func TestNew_CopiesInput(t *testing.T) {
	in := []points.Point{
		{ID: "a", Coord: geo.Coord{X: 1, Y: 2}, SegmentID: "s", UpDist: 1},
		{ID: "b", Coord: geo.Coord{X: 3, Y: 4}, SegmentID: "s", UpDist: 2},
	}
	s := points.New(in, quiet())
	in[0].ID = "mutated"

	assert.Equal(t, 2, s.N())
	got := s.Points()
	assert.Equal(t, "a", got[0].ID)

	got[1].ID = "mutated"
	assert.Equal(t, "b", s.Points()[1].ID)
}

func TestSetPoints_UpdatesImmediately(t *testing.T) {
	s := points.New(nil, quiet())
	assert.Equal(t, 0, s.N())
	assert.Empty(t, s.Points())

	for _, n := range []int{3, 1, 0, 5} {
		pts := make([]points.Point, n)
		for i := range pts {
			pts[i] = points.Point{ID: string(rune('a' + i)), SegmentID: "s"}
		}
		s.SetPoints(pts)
		require.Equal(t, n, s.N())
		require.Len(t, s.Points(), n)
		if n > 0 {
			require.Equal(t, pts, s.Points())
		}
	}
}

func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { points.WithWorkers(0) })
	assert.NotPanics(t, func() { points.WithWorkers(1) })
}

func TestNilOptionsIgnored(t *testing.T) {
	s := points.New(nil, points.WithGeoMetric(nil), points.WithHydroMethod(nil), points.WithLogger(nil), points.WithMetrics(nil))
	assert.Equal(t, 0, s.N())
}
