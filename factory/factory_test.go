// Package factory_test covers registration, creation and listing semantics of
// the generic Registry, including concurrent use.
package factory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamnet/factory"
)

// shape is a tiny product type used across tests.
type shape interface{ Kind() string }

type square struct{ side int }

func (s *square) Kind() string { return "square" }

type circle struct{}

func (c *circle) Kind() string { return "circle" }

func newSquare() shape { return &square{side: 1} }
func newCircle() shape { return &circle{} }

func TestRegistered_ReturnsSortedIdentifiers(t *testing.T) {
	r := factory.New[string, shape]()
	// Registration order is deliberately shuffled.
	for _, id := range []string{"triangle", "circle", "square", "hexagon"} {
		require.NoError(t, r.Register(id, newSquare))
	}

	assert.Equal(t, []string{"circle", "hexagon", "square", "triangle"}, r.Registered())
	assert.Equal(t, 4, r.Len())
}

func TestRegistered_IntIdentifiers(t *testing.T) {
	r := factory.New[int, shape]()
	for _, id := range []int{30, -2, 7} {
		require.NoError(t, r.Register(id, newCircle))
	}
	assert.Equal(t, []int{-2, 7, 30}, r.Registered())
}

func TestRegistered_Empty(t *testing.T) {
	r := factory.New[string, shape]()
	assert.Empty(t, r.Registered())
	assert.Equal(t, 0, r.Len())
}

func TestRegister_DuplicateKeepsFirst(t *testing.T) {
	r := factory.New[string, shape]()
	require.NoError(t, r.Register("a", newSquare))

	err := r.Register("a", newCircle)
	require.ErrorIs(t, err, factory.ErrDuplicateRegistration)

	// The first builder is still the active one.
	s, err := r.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "square", s.Kind())
	assert.Equal(t, []string{"a"}, r.Registered())
}

func TestRegister_NilBuilder(t *testing.T) {
	r := factory.New[string, shape]()
	err := r.Register("nil", nil)
	require.ErrorIs(t, err, factory.ErrNilBuilder)
	assert.False(t, r.Has("nil"))
}

func TestCreate_UnknownIdentifier(t *testing.T) {
	r := factory.New[string, shape]()
	s, err := r.Create("missing")
	require.ErrorIs(t, err, factory.ErrUnknownIdentifier)
	assert.Contains(t, err.Error(), "missing")
	assert.Nil(t, s)
}

func TestUnregister_ThenCreateFails(t *testing.T) {
	r := factory.New[string, shape]()
	require.NoError(t, r.Register("a", newSquare))

	r.Unregister("a")
	assert.False(t, r.Has("a"))

	_, err := r.Create("a")
	require.ErrorIs(t, err, factory.ErrUnknownIdentifier)

	// The identifier can be registered again after removal.
	require.NoError(t, r.Register("a", newCircle))
}

func TestUnregister_AbsentIsNoop(t *testing.T) {
	r := factory.New[string, shape]()
	require.NoError(t, r.Register("a", newSquare))

	assert.NotPanics(t, func() { r.Unregister("never") })
	assert.Equal(t, []string{"a"}, r.Registered())
}

func TestCreate_DistinctInstances(t *testing.T) {
	r := factory.New[string, shape]()
	require.NoError(t, r.Register("sq", newSquare))

	a, err := r.Create("sq")
	require.NoError(t, err)
	b, err := r.Create("sq")
	require.NoError(t, err)

	// Same value, different identity.
	assert.Equal(t, a, b)
	assert.NotSame(t, a.(*square), b.(*square))

	a.(*square).side = 99
	assert.Equal(t, 1, b.(*square).side)
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	r := factory.New[string, shape]()
	factory.MustRegister(r, "a", newSquare)

	assert.Panics(t, func() { factory.MustRegister(r, "a", newSquare) })
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := factory.New[string, shape]()
	require.NoError(t, r.Register("base", newSquare))

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			if err := r.Register(fmt.Sprintf("id-%02d", i), newCircle); err != nil {
				errs <- err
				return
			}
			if _, err := r.Create("base"); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent use: %v", err)
	}
	assert.Equal(t, workers+1, r.Len())
}

// ExampleRegistry shows the register / create / list cycle.
func ExampleRegistry() {
	r := factory.New[string, shape]()
	factory.MustRegister(r, "square", newSquare)
	factory.MustRegister(r, "circle", newCircle)

	s, err := r.Create("square")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Kind(), r.Registered())

	_, err = r.Create("hexagon")
	fmt.Println(err)
	// Output:
	// square [circle square]
	// factory: unknown identifier: identifier hexagon is not stored in the factory
}
