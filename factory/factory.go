// SPDX-License-Identifier: MIT

// Package factory provides a generic registry that maps ordered identifiers
// to builder functions and instantiates products on demand.
//
// Registries are plain values created with New; there is no package-level
// singleton. Code that needs one shared instance keeps it explicitly and
// passes it to whoever constructs products.
//
// Typical usage:
//
//	metrics := factory.New[string, geo.Metric]()
//	factory.MustRegister(metrics, "euclidean", func() geo.Metric { return geo.Euclidean{} })
//	m, err := metrics.Create("euclidean")
//
// Errors (sentinel):
//
//	ErrDuplicateRegistration - identifier already registered; state unchanged.
//	ErrUnknownIdentifier     - Create on an identifier that is not registered.
//	ErrNilBuilder            - Register with a nil builder.
//
// Thread safety: all methods are safe for concurrent use. Builders are invoked
// outside the registry lock, so a builder may itself consult the registry.
package factory

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

var (
	// ErrDuplicateRegistration indicates an attempt to register an identifier twice.
	ErrDuplicateRegistration = errors.New("factory: duplicate registration")

	// ErrUnknownIdentifier indicates Create was called with an identifier that is not stored.
	ErrUnknownIdentifier = errors.New("factory: unknown identifier")

	// ErrNilBuilder indicates Register was called with a nil builder.
	ErrNilBuilder = errors.New("factory: nil builder")
)

// Builder constructs one new product instance per call.
type Builder[P any] func() P

// Option configures a Registry at construction time.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for debug messages on registry mutation.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Registry associates identifiers with builders of a product type P.
type Registry[I cmp.Ordered, P any] struct {
	mu      sync.RWMutex
	storage map[I]Builder[P]
	logger  *slog.Logger
}

// New returns an empty registry.
func New[I cmp.Ordered, P any](opts ...Option) *Registry[I, P] {
	o := options{logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}

	return &Registry[I, P]{
		storage: make(map[I]Builder[P]),
		logger:  o.logger.With("component", "factory"),
	}
}

// Register stores b under id. A second registration of the same id fails with
// ErrDuplicateRegistration and leaves the first one active.
func (r *Registry[I, P]) Register(id I, b Builder[P]) error {
	if b == nil {
		return fmt.Errorf("%w: identifier %v", ErrNilBuilder, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.storage[id]; exists {
		return fmt.Errorf("%w: identifier %v", ErrDuplicateRegistration, id)
	}
	r.storage[id] = b
	r.logger.Debug("builder registered", "id", id)

	return nil
}

// MustRegister panics if Register fails. Intended for wiring code that runs
// once at startup, where a duplicate is a programming error.
func MustRegister[I cmp.Ordered, P any](r *Registry[I, P], id I, b Builder[P]) {
	if err := r.Register(id, b); err != nil {
		panic(err)
	}
}

// Create invokes the builder stored under id and returns the new instance.
// The registry keeps no reference to what it builds.
func (r *Registry[I, P]) Create(id I) (P, error) {
	r.mu.RLock()
	b, ok := r.storage[id]
	r.mu.RUnlock()

	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: identifier %v is not stored in the factory", ErrUnknownIdentifier, id)
	}

	return b(), nil
}

// Unregister removes id. Removing an absent id is a no-op.
func (r *Registry[I, P]) Unregister(id I) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.storage[id]; !ok {
		return
	}
	delete(r.storage, id)
	r.logger.Debug("builder unregistered", "id", id)
}

// Registered returns all identifiers in ascending order.
func (r *Registry[I, P]) Registered() []I {
	r.mu.RLock()
	ids := make([]I, 0, len(r.storage))
	for id := range r.storage {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	slices.Sort(ids)

	return ids
}

// Has reports whether id is registered.
func (r *Registry[I, P]) Has(id I) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.storage[id]

	return ok
}

// Len returns the number of registered identifiers.
func (r *Registry[I, P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.storage)
}
