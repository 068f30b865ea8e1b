// SPDX-License-Identifier: MIT

package points

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values of streamnet_points_compute_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultStale = "stale"
)

// Metrics is the Prometheus instrumentation of a Set. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	computeTotal    *prometheus.CounterVec
	computeDuration prometheus.Histogram
	pointCount      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by an earlier call are reused, so several
// Sets may share one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("points: nil prometheus registerer")
	}

	m := &Metrics{
		computeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "streamnet",
			Subsystem: "points",
			Name:      "compute_total",
			Help:      "Total ComputeDistances calls by result",
		}, []string{"result"}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "streamnet",
			Subsystem: "points",
			Name:      "compute_seconds",
			Help:      "ComputeDistances latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		pointCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "streamnet",
			Subsystem: "points",
			Name:      "count",
			Help:      "Number of points in the most recently updated set",
		}),
	}

	var err error
	if m.computeTotal, err = register(reg, m.computeTotal); err != nil {
		return nil, err
	}
	if m.computeDuration, err = register(reg, m.computeDuration); err != nil {
		return nil, err
	}
	if m.pointCount, err = register(reg, m.pointCount); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the existing collector on a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("points: register metric: %w", err)
	}

	return c, nil
}

func (m *Metrics) observe(err error, d time.Duration) {
	if m == nil {
		return
	}
	result := ResultOK
	switch {
	case errors.Is(err, ErrPointsChanged):
		result = ResultStale
	case err != nil:
		result = ResultError
	}
	m.computeTotal.WithLabelValues(result).Inc()
	m.computeDuration.Observe(d.Seconds())
}

func (m *Metrics) setPoints(n int) {
	if m == nil {
		return
	}
	m.pointCount.Set(float64(n))
}
