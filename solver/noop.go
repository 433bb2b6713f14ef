// Package solver: the identity adjustment strategy.
package solver

// Noop is the identity Adjuster: every station keeps its current position.
// Useful as a default, in tests, or when the caller explicitly wants the
// raw propagated coordinates.
type Noop struct{}

// Name implements Adjuster.
func (Noop) Name() string { return "Noop" }

// Adjust implements Adjuster by returning an unchanged copy of the
// station positions.
// Complexity: O(V).
func (Noop) Adjust(n *Network) (map[string]Vec2, error) {
	if err := validate(n); err != nil {
		return nil, err
	}

	return copyStations(n), nil
}
