// SPDX-License-Identifier: MIT

// Package geo defines planar/geodetic coordinates and the geographic
// (straight-line) metrics used for point-to-point distances.
//
// Every Metric is a true metric: symmetric, zero on identical inputs, and
// satisfying the triangle inequality.
//
//	Euclidean – √(Δx² + Δy²) in the coordinate units.
//	Haversine – great-circle distance on a sphere; X = longitude, Y = latitude (degrees).
//
// Metrics are constructible by name through NewRegistry.
package geo

import (
	"math"

	"github.com/katalvlaran/streamnet/factory"
)

// Names under which the built-in metrics are registered.
const (
	NameEuclidean = "euclidean"
	NameHaversine = "haversine"
)

// EarthRadius is the mean Earth radius in metres (IUGG).
const EarthRadius = 6371008.8

// Coord is a 2-D location. For Haversine, X is longitude and Y latitude in degrees.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Metric measures straight-line distance between two coordinates.
type Metric interface {
	// Name returns the registry name of the metric.
	Name() string
	// Distance returns d(a, b) ≥ 0.
	Distance(a, b Coord) float64
}

// Euclidean is the planar L2 distance.
type Euclidean struct{}

// Name implements Metric.
func (Euclidean) Name() string { return NameEuclidean }

// Distance implements Metric. math.Hypot avoids overflow on large deltas.
func (Euclidean) Distance(a, b Coord) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Haversine is the great-circle distance on a sphere of the given Radius.
// A zero Radius means EarthRadius.
type Haversine struct {
	Radius float64
}

// Name implements Metric.
func (Haversine) Name() string { return NameHaversine }

// Distance implements Metric.
func (h Haversine) Distance(a, b Coord) float64 {
	r := h.Radius
	if r == 0 {
		r = EarthRadius
	}
	const rad = math.Pi / 180
	lat1, lat2 := a.Y*rad, b.Y*rad
	dLat := lat2 - lat1
	dLon := (b.X - a.X) * rad

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Clamp rounding noise so Asin stays in its domain.
	s = math.Min(1, math.Max(0, s))

	return 2 * r * math.Asin(math.Sqrt(s))
}

// NewRegistry returns a registry holding the built-in metrics.
// Callers may register additional metrics on the returned value.
func NewRegistry(opts ...factory.Option) *factory.Registry[string, Metric] {
	r := factory.New[string, Metric](opts...)
	factory.MustRegister(r, NameEuclidean, func() Metric { return Euclidean{} })
	factory.MustRegister(r, NameHaversine, func() Metric { return Haversine{Radius: EarthRadius} })

	return r
}
