// SPDX-License-Identifier: MIT

package points

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/streamnet/geo"
	"github.com/katalvlaran/streamnet/hydro"
)

// Option configures a Set.
type Option func(*settings)

// settings is the resolved configuration of a Set. Defaults:
//   - metric  = geo.Euclidean
//   - method  = hydro.UpDist
//   - workers = GOMAXPROCS
//   - logger  = slog.Default()
//   - metrics = nil (no instrumentation)
type settings struct {
	metric  geo.Metric
	method  hydro.Method
	workers int
	logger  *slog.Logger
	metrics *Metrics
}

func defaultSettings() settings {
	return settings{
		metric:  geo.Euclidean{},
		method:  hydro.UpDist{},
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
}

// WithGeoMetric sets the straight-line metric. A nil metric is ignored.
func WithGeoMetric(m geo.Metric) Option {
	return func(s *settings) {
		if m != nil {
			s.metric = m
		}
	}
}

// WithHydroMethod sets the hydrological method. A nil method is ignored.
func WithHydroMethod(m hydro.Method) Option {
	return func(s *settings) {
		if m != nil {
			s.method = m
		}
	}
}

// WithWorkers caps the number of rows computed in parallel.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("points: workers must be >= 1")
	}

	return func(s *settings) { s.workers = n }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) { s.metrics = m }
}
