// Package streamnet computes pairwise relationships between spatial points
// that sit on stream networks: who drains into whom, how far apart they are
// along the channel, and how far apart they are on the map.
//
// 🚀 What is streamnet?
//
//	A small, thread-safe library built from a few focused packages:
//		• factory/  – generic, mutex-guarded registry of named builders
//		• matrix/   – dense float64 and int matrices, read-only views, validators
//		• geo/      – straight-line metrics (Euclidean, Haversine)
//		• network/  – binary-ID stream topology, outlet paths, junction graph, Dijkstra
//		• hydro/    – along-network distance methods (updist, dijkstra)
//		• points/   – the point set and its FlowMat / DistHydro / DistDownstream / DistGeo
//
// ✨ Conventions
//
//   - Sentinel errors prefixed with their package ("points: …"), matched via errors.Is
//   - Functional options; option constructors panic on invalid arguments
//   - log/slog for structured logs, Prometheus for metrics, YAML for config
//   - Heavy work in parallel (errgroup), results swapped in atomically
//
// Quick ASCII example:
//
//	  b (s10)   c (s11)
//	      \     /
//	       a (s1)
//	         |
//	       outlet
//
//	b and c are not flow-connected; their hydrological distance runs
//	through the fork at the top of s1. a is flow-connected to both.
//
// See examples/basin_gauges.go for an end-to-end program.
//
//	go get github.com/katalvlaran/streamnet
package streamnet
