// Package testnet provides stream-network fixtures for tests and benchmarks.
//
// Named fixtures live in testdata/*.yaml and are embedded into the binary so
// tests in any package can load them without caring about the working
// directory. Random produces larger, always-consistent networks for property
// tests and benchmarks.
//
// This package is intended for use in tests only.
package testnet

import (
	"embed"
	"fmt"
	"math/rand"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/streamnet/network"
)

//go:embed testdata/*.yaml
var fixtures embed.FS

// PointSpec is a point as written in a fixture file.
type PointSpec struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Segment string  `yaml:"segment"`
	UpDist  float64 `yaml:"up_dist"`
}

// Fixture is a decoded fixture file.
type Fixture struct {
	Segments map[string]network.Segment
	Points   []PointSpec
}

type fixtureFile struct {
	Segments []network.Segment `yaml:"segments"`
	Points   []PointSpec       `yaml:"points"`
}

// Load decodes testdata/<name>.yaml.
func Load(name string) (Fixture, error) {
	raw, err := fixtures.ReadFile("testdata/" + name + ".yaml")
	if err != nil {
		return Fixture{}, fmt.Errorf("testnet: fixture %q: %w", name, err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("testnet: decode %q: %w", name, err)
	}

	out := Fixture{Segments: make(map[string]network.Segment, len(f.Segments)), Points: f.Points}
	for _, s := range f.Segments {
		out.Segments[s.ID] = s
	}

	return out, nil
}

// MustLoad is Load that panics on error.
func MustLoad(name string) Fixture {
	f, err := Load(name)
	if err != nil {
		panic(err)
	}

	return f
}

// Random builds a consistent random network of the given number of binary-ID
// levels (depth ≥ 1) with nPoints points scattered over its segments. Not
// every branch is grown, so the tree is irregular. The same seed always
// yields the same fixture.
func Random(seed int64, depth, nPoints int) Fixture {
	rng := rand.New(rand.NewSource(seed))
	segs := make(map[string]network.Segment)

	var grow func(bid string, downDist float64, level int)
	grow = func(bid string, downDist float64, level int) {
		length := 1 + rng.Float64()*9
		s := network.Segment{
			ID:       "r" + bid,
			BinaryID: bid,
			Length:   length,
			UpDist:   downDist + length,
		}
		segs[s.ID] = s
		if level+1 >= depth {
			return
		}
		for _, digit := range []string{"0", "1"} {
			if level == 0 || rng.Intn(4) > 0 { // the root always forks
				grow(bid+digit, s.UpDist, level+1)
			}
		}
	}
	grow(network.RootBinaryID, 0, 0)

	ids := make([]string, 0, len(segs))
	for id := range segs {
		ids = append(ids, id)
	}
	slices.Sort(ids) // seed-stable choice of segments

	pts := make([]PointSpec, nPoints)
	for i := range pts {
		s := segs[ids[rng.Intn(len(ids))]]
		pts[i] = PointSpec{
			ID:      "p" + strconv.Itoa(i),
			X:       rng.Float64() * 100,
			Y:       rng.Float64() * 100,
			Segment: s.ID,
			UpDist:  s.DownDist() + rng.Float64()*s.Length,
		}
	}

	return Fixture{Segments: segs, Points: pts}
}
