// SPDX-License-Identifier: MIT

package matrix

// Option configures a Dense matrix at construction time.
type Option func(*denseConfig)

// denseConfig holds construction knobs. Defaults are the strict finite-only policy.
type denseConfig struct {
	allowInf bool // accept ±Inf in Set; NaN is rejected regardless
}

// WithInf lets Set store ±Inf. Use it for distance matrices where
// "unreachable" is a legitimate value.
func WithInf() Option {
	return func(c *denseConfig) { c.allowInf = true }
}

// newDenseConfig applies options in order over the strict defaults.
func newDenseConfig(opts ...Option) denseConfig {
	cfg := denseConfig{allowInf: false}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}
