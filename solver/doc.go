// Package solver provides a named-station network model and pluggable
// adjustment strategies on top of it — the convenience layer for callers
// who think in station names and measured shots rather than vertex indices
// and sparse systems.
//
// Overview:
//
//   - A Network holds station positions keyed by name, directed measurement
//     Shots between stations, and a set of Anchors whose coordinates are
//     trusted (GPS-tied or otherwise surveyed).
//   - An Adjuster consumes a Network and returns a fresh map of adjusted
//     positions. The contract every implementation honors: every station
//     appears in the result, and anchors never move.
//
// Strategies:
//
//   - Noop:         identity — returns positions unchanged. Useful as a
//     default, in tests, or when raw propagated coordinates are wanted.
//   - Proportional: classic traverse adjustment. For each connected anchor
//     pair (A, B) the network is re-propagated from A along measurement
//     deltas, the misclosure at B is computed, and every station is
//     corrected by −d_A/(d_A+d_B)·misclosure, where d_A and d_B are
//     cumulative shot-length graph distances. Stations near A barely move,
//     stations near B absorb nearly the full correction, and side branches
//     interpolate naturally. With three or more anchors a station's final
//     position is the average of the per-pair corrections. Fast, seam-free,
//     no linear algebra.
//   - LeastSquares: bridges the network onto the adjust package — stations
//     become vertices (anchors fixed), shots become weighted edges
//     (weight 1/max(length, 0.1)), and the sparse CG pipeline distributes
//     the misclosure over the whole network at once in the weighted
//     least-squares sense.
//
// Error handling (sentinel):
//
//   - ErrNilNetwork     if an Adjuster receives a nil network.
//   - ErrUnknownStation if a shot references a station that does not exist.
//
// All adjusters are deterministic: iteration over stations and anchors is
// name-sorted, never map-ordered.
package solver
