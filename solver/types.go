// Package solver: network model primitives, sentinel errors and the
// Adjuster contract. Strategy implementations live in noop.go,
// proportional.go and leastsquares.go.
package solver

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors returned by the adjusters.
var (
	// ErrNilNetwork indicates that a nil *Network was passed to an Adjuster.
	ErrNilNetwork = errors.New("solver: network is nil")

	// ErrUnknownStation indicates that a shot references a station name
	// absent from Network.Stations.
	ErrUnknownStation = errors.New("solver: shot references unknown station")
)

// minShotDistance floors shot lengths used for weighting so a zero-length
// shot cannot produce an infinite weight or a zero interpolation span.
const minShotDistance = 1e-6

// Vec2 is an immutable 2D vector (easting, northing) in caller units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v − o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns −v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Shot is a single directed measurement in the network: station To lies
// Delta away from station From. Distance is the measured shot length used
// for weighting and interpolation (floored at minShotDistance).
type Shot struct {
	From, To string
	Delta    Vec2
	Distance float64
}

// Network is the full adjustment input: raw propagated station positions,
// the measurements connecting them, and the set of anchor stations whose
// coordinates must never move.
type Network struct {
	Stations map[string]Vec2
	Shots    []Shot
	Anchors  map[string]struct{}
}

// NewNetwork returns an empty network ready for AddStation/AddShot calls.
func NewNetwork() *Network {
	return &Network{
		Stations: make(map[string]Vec2),
		Anchors:  make(map[string]struct{}),
	}
}

// AddStation records (or overwrites) a free station position.
func (n *Network) AddStation(name string, pos Vec2) {
	n.Stations[name] = pos
}

// AddAnchor records a station whose position is trusted and immutable.
func (n *Network) AddAnchor(name string, pos Vec2) {
	n.Stations[name] = pos
	n.Anchors[name] = struct{}{}
}

// AddShot records a directed measurement from → to with displacement
// delta; the shot length defaults to |delta| floored at minShotDistance.
func (n *Network) AddShot(from, to string, delta Vec2) {
	dist := delta.Len()
	if dist < minShotDistance {
		dist = minShotDistance
	}
	n.Shots = append(n.Shots, Shot{From: from, To: to, Delta: delta, Distance: dist})
}

// Adjuster is the strategy contract shared by every adjustment algorithm.
//
// Adjust returns a fresh map with every station of the network present;
// anchor stations keep their original coordinates exactly. The input
// network itself is never mutated.
type Adjuster interface {
	// Name is the human-readable strategy label (for logging / UI).
	Name() string

	// Adjust computes adjusted positions for all stations.
	Adjust(n *Network) (map[string]Vec2, error)
}

// validate checks the shared Adjuster preconditions: a non-nil network
// whose shots only reference existing stations.
func validate(n *Network) error {
	if n == nil {
		return ErrNilNetwork
	}
	for _, s := range n.Shots {
		if _, ok := n.Stations[s.From]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStation, s.From)
		}
		if _, ok := n.Stations[s.To]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStation, s.To)
		}
	}

	return nil
}

// copyStations clones the station map; the baseline result every adjuster
// starts from.
func copyStations(n *Network) map[string]Vec2 {
	out := make(map[string]Vec2, len(n.Stations))
	for name, pos := range n.Stations {
		out[name] = pos
	}

	return out
}

// sortedAnchors returns the anchor names that actually exist as stations,
// in lexicographic order for deterministic pair iteration. Orphan anchors
// (registered but without a position) are skipped.
func sortedAnchors(n *Network) []string {
	names := make([]string, 0, len(n.Anchors))
	for name := range n.Anchors {
		if _, ok := n.Stations[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

// adjacency builds the undirected adjacency list: every shot appears
// forward on its From station and reversed (negated delta) on its To
// station, so propagation can walk the network in either direction.
func adjacency(n *Network) map[string][]Shot {
	adj := make(map[string][]Shot, len(n.Stations))
	for _, s := range n.Shots {
		adj[s.From] = append(adj[s.From], s)
		adj[s.To] = append(adj[s.To], Shot{
			From:     s.To,
			To:       s.From,
			Delta:    s.Delta.Neg(),
			Distance: s.Distance,
		})
	}

	return adj
}
