package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamnet/factory"
	"github.com/katalvlaran/streamnet/geo"
)

func TestEuclidean(t *testing.T) {
	m := geo.Euclidean{}
	assert.Equal(t, geo.NameEuclidean, m.Name())
	assert.InDelta(t, 5.0, m.Distance(geo.Coord{X: 0, Y: 0}, geo.Coord{X: 3, Y: 4}), 1e-12)
	assert.Equal(t, 0.0, m.Distance(geo.Coord{X: 2, Y: 2}, geo.Coord{X: 2, Y: 2}))
}

func TestHaversine_KnownDistances(t *testing.T) {
	m := geo.Haversine{}
	// One degree of latitude along a meridian.
	oneDeg := m.Distance(geo.Coord{X: 0, Y: 0}, geo.Coord{X: 0, Y: 1})
	assert.InDelta(t, geo.EarthRadius*math.Pi/180, oneDeg, 1e-6)

	// Antipodal points on the equator: half the circumference.
	half := m.Distance(geo.Coord{X: 0, Y: 0}, geo.Coord{X: 180, Y: 0})
	assert.InDelta(t, geo.EarthRadius*math.Pi, half, 1e-3)

	// Custom radius scales linearly.
	unit := geo.Haversine{Radius: 1}
	assert.InDelta(t, math.Pi/2, unit.Distance(geo.Coord{X: 0, Y: 0}, geo.Coord{X: 90, Y: 0}), 1e-12)
}

// TestMetricProperties checks symmetry, identity and the triangle inequality
// on a small fixed sample for every built-in metric.
func TestMetricProperties(t *testing.T) {
	sample := []geo.Coord{
		{X: 10.1, Y: 45.2}, {X: 10.4, Y: 45.0}, {X: 9.8, Y: 46.1}, {X: 11.0, Y: 44.7}, {X: 10.1, Y: 45.2},
	}
	for _, m := range []geo.Metric{geo.Euclidean{}, geo.Haversine{}} {
		t.Run(m.Name(), func(t *testing.T) {
			for _, a := range sample {
				assert.Equal(t, 0.0, m.Distance(a, a))
				for _, b := range sample {
					dab := m.Distance(a, b)
					assert.GreaterOrEqual(t, dab, 0.0)
					assert.InDelta(t, dab, m.Distance(b, a), 1e-9)
					for _, c := range sample {
						assert.LessOrEqual(t, m.Distance(a, c), dab+m.Distance(b, c)+1e-6)
					}
				}
			}
		})
	}
}

func TestNewRegistry(t *testing.T) {
	r := geo.NewRegistry()
	assert.Equal(t, []string{geo.NameEuclidean, geo.NameHaversine}, r.Registered())

	m, err := r.Create(geo.NameHaversine)
	require.NoError(t, err)
	assert.Equal(t, geo.NameHaversine, m.Name())

	_, err = r.Create("manhattan")
	require.ErrorIs(t, err, factory.ErrUnknownIdentifier)
}
