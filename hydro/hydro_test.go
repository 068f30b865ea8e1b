package hydro_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streamnet/factory"
	"github.com/katalvlaran/streamnet/hydro"
	"github.com/katalvlaran/streamnet/internal/testnet"
	"github.com/katalvlaran/streamnet/network"
)

func load(t *testing.T, name string) (*network.Network, map[string]hydro.Location) {
	t.Helper()
	f, err := testnet.Load(name)
	require.NoError(t, err)
	n, err := network.New(f.Segments)
	require.NoError(t, err)

	locs := make(map[string]hydro.Location, len(f.Points))
	for _, p := range f.Points {
		locs[p.ID] = hydro.Location{SegmentID: p.Segment, UpDist: p.UpDist}
	}

	return n, locs
}

func methods() []hydro.Method { return []hydro.Method{hydro.UpDist{}, hydro.Dijkstra{}} }

// TestPair_Forks checks hand-computed pairs on the forks fixture for both methods.
func TestPair_Forks(t *testing.T) {
	n, locs := load(t, "forks")
	inf := math.Inf(1)
	cases := []struct {
		a, b         string
		flow         bool
		downA, downB float64
	}{
		{"a", "a", true, 0, 0},
		{"a", "b", true, 0, 8},
		{"b", "a", true, 8, 0},
		{"a", "e", true, 0, 16},
		{"b", "d", true, 0, 5},
		{"b", "c", false, 2, 3},
		{"c", "d", false, 3, 7},
		{"c", "e", false, 3, 10},
		{"d", "e", false, 2, 5},
		{"a", "f", false, inf, inf},
	}
	for _, m := range methods() {
		t.Run(m.Name(), func(t *testing.T) {
			s, err := m.Bind(n)
			require.NoError(t, err)
			for _, tc := range cases {
				p, err := s.Pair(locs[tc.a], locs[tc.b])
				require.NoError(t, err)
				assert.Equal(t, tc.flow, p.Flow, "%s-%s flow", tc.a, tc.b)
				assert.InDelta(t, tc.downA, p.DownA, 1e-9, "%s-%s downA", tc.a, tc.b)
				assert.InDelta(t, tc.downB, p.DownB, 1e-9, "%s-%s downB", tc.a, tc.b)
			}
		})
	}
}

func TestPair_Errors(t *testing.T) {
	n, locs := load(t, "forks")
	for _, m := range methods() {
		t.Run(m.Name(), func(t *testing.T) {
			_, err := m.Bind(nil)
			require.ErrorIs(t, err, hydro.ErrNilNetwork)

			s, err := m.Bind(n)
			require.NoError(t, err)

			_, err = s.Pair(hydro.Location{SegmentID: "ghost"}, locs["a"])
			require.ErrorIs(t, err, network.ErrUnknownSegment)

			// s10 spans up_dist [10, 15].
			_, err = s.Pair(locs["a"], hydro.Location{SegmentID: "s10", UpDist: 16})
			require.ErrorIs(t, err, hydro.ErrOffSegment)
			_, err = s.Pair(hydro.Location{SegmentID: "s10", UpDist: 9}, locs["a"])
			require.ErrorIs(t, err, hydro.ErrOffSegment)
		})
	}
}

// TestMethodsAgree compares the two methods on random consistent networks.
func TestMethodsAgree(t *testing.T) {
	for seed := int64(10); seed < 16; seed++ {
		f := testnet.Random(seed, 7, 25)
		n, err := network.New(f.Segments)
		require.NoError(t, err)

		up, err := hydro.UpDist{}.Bind(n)
		require.NoError(t, err)
		dj, err := hydro.Dijkstra{}.Bind(n)
		require.NoError(t, err)

		for _, pa := range f.Points {
			for _, pb := range f.Points {
				a := hydro.Location{SegmentID: pa.Segment, UpDist: pa.UpDist}
				b := hydro.Location{SegmentID: pb.Segment, UpDist: pb.UpDist}
				x, err := up.Pair(a, b)
				require.NoError(t, err)
				y, err := dj.Pair(a, b)
				require.NoError(t, err)

				assert.Equal(t, x.Flow, y.Flow)
				assert.InDelta(t, x.DownA, y.DownA, 1e-6, "seed %d %s-%s", seed, pa.ID, pb.ID)
				assert.InDelta(t, x.DownB, y.DownB, 1e-6, "seed %d %s-%s", seed, pa.ID, pb.ID)
				// Symmetry of the total distance.
				r, err := up.Pair(b, a)
				require.NoError(t, err)
				assert.InDelta(t, x.Total(), r.Total(), 1e-9)
			}
		}
	}
}

func TestNewRegistry(t *testing.T) {
	r := hydro.NewRegistry()
	assert.Equal(t, []string{hydro.NameDijkstra, hydro.NameUpDist}, r.Registered())

	m, err := r.Create(hydro.NameDijkstra)
	require.NoError(t, err)
	assert.Equal(t, hydro.NameDijkstra, m.Name())

	_, err = r.Create("manning")
	require.ErrorIs(t, err, factory.ErrUnknownIdentifier)
}
