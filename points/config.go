// SPDX-License-Identifier: MIT

package points

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/streamnet/factory"
	"github.com/katalvlaran/streamnet/geo"
	"github.com/katalvlaran/streamnet/hydro"
)

// Config is the declarative form of a Set's options.
//
//	geo_metric:   euclidean | haversine   (default euclidean)
//	hydro_method: updist | dijkstra       (default updist)
//	workers:      0 means GOMAXPROCS
type Config struct {
	GeoMetric   string `yaml:"geo_metric"`
	HydroMethod string `yaml:"hydro_method"`
	Workers     int    `yaml:"workers"`
}

// DefaultConfig returns the configuration matching New without options.
func DefaultConfig() Config {
	return Config{
		GeoMetric:   geo.NameEuclidean,
		HydroMethod: hydro.NameUpDist,
	}
}

// ParseConfig decodes YAML into a Config on top of DefaultConfig.
// Unknown keys are rejected. Empty input yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the fields that can be checked without registries.
func (c Config) Validate() error {
	if c.GeoMetric == "" {
		return fmt.Errorf("%w: geo_metric is empty", ErrInvalidConfig)
	}
	if c.HydroMethod == "" {
		return fmt.Errorf("%w: hydro_method is empty", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// Options resolves the config against the registries. A nil registry is
// replaced by the package's built-in one.
func (c Config) Options(
	geoReg *factory.Registry[string, geo.Metric],
	hydroReg *factory.Registry[string, hydro.Method],
) ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if geoReg == nil {
		geoReg = geo.NewRegistry()
	}
	if hydroReg == nil {
		hydroReg = hydro.NewRegistry()
	}

	metric, err := geoReg.Create(c.GeoMetric)
	if err != nil {
		return nil, fmt.Errorf("%w: geo_metric: %w", ErrInvalidConfig, err)
	}
	method, err := hydroReg.Create(c.HydroMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: hydro_method: %w", ErrInvalidConfig, err)
	}

	opts := []Option{WithGeoMetric(metric), WithHydroMethod(method)}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}

	return opts, nil
}
