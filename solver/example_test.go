// Package solver_test provides runnable examples for the adjustment
// strategies. Each example is runnable via “go test -run Example”.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/netadjust/solver"
)

// ExampleProportional demonstrates closing a two-anchor traverse whose
// measurements overshoot by one unit: the middle station absorbs exactly
// half the misclosure because it sits halfway between the anchors.
func ExampleProportional() {
	// 1) Anchors at (0,0) and (20,0); the two shots sum to 21, so the
	//    traverse overshoots B by 1.
	n := solver.NewNetwork()
	n.AddAnchor("A", solver.Vec2{X: 0, Y: 0})
	n.AddAnchor("B", solver.Vec2{X: 20, Y: 0})
	n.AddStation("X", solver.Vec2{X: 10.5, Y: 0})
	n.AddShot("A", "X", solver.Vec2{X: 10.5, Y: 0})
	n.AddShot("X", "B", solver.Vec2{X: 10.5, Y: 0})

	// 2) Distribute the misclosure by graph distance.
	got, err := solver.Proportional{}.Adjust(n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("X=(%.3f, %.3f) B=(%.0f, %.0f)\n", got["X"].X, got["X"].Y, got["B"].X, got["B"].Y)
	// Output: X=(10.000, 0.000) B=(20, 0)
}

// ExampleLeastSquares demonstrates the same traverse closed through the
// sparse conjugate-gradient pipeline; for this symmetric topology the
// answer coincides with the proportional one.
func ExampleLeastSquares() {
	n := solver.NewNetwork()
	n.AddAnchor("A", solver.Vec2{X: 0, Y: 0})
	n.AddAnchor("B", solver.Vec2{X: 20, Y: 0})
	n.AddStation("X", solver.Vec2{X: 10.5, Y: 0})
	n.AddShot("A", "X", solver.Vec2{X: 10.5, Y: 0})
	n.AddShot("X", "B", solver.Vec2{X: 10.5, Y: 0})

	got, err := solver.LeastSquares{}.Adjust(n)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("X=(%.3f, %.3f)\n", got["X"].X, got["X"].Y)
	// Output: X=(10.000, 0.000)
}
