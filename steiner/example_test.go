package steiner_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// ExampleSolveTree connects three terminals through a cheaper hub node.
func ExampleSolveTree() {
	g, _ := core.FromEdges(4, []core.Edge{
		{From: 4, To: 1, Weight: 1}, {From: 4, To: 2, Weight: 1}, {From: 4, To: 3, Weight: 1},
		{From: 1, To: 2, Weight: 2}, {From: 2, To: 3, Weight: 2},
	})

	w, err := steiner.SolveTree(g, []int{1, 2, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("steiner tree weight:", w)
	// Output: steiner tree weight: 3
}

// ExampleSolver_Forest pairs each group-A terminal with a group-B terminal.
func ExampleSolver_Forest() {
	g, _ := core.FromEdges(4, []core.Edge{
		{From: 1, To: 3, Weight: 2}, {From: 2, To: 4, Weight: 3}, {From: 1, To: 2, Weight: 100},
	})

	f, err := steiner.NewSolver().Forest(g, []int{1, 2}, []int{3, 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	w, err := f.MinCost()
	switch {
	case errors.Is(err, steiner.ErrNoSolution):
		fmt.Println("No solution")
	default:
		fmt.Println("forest weight:", w)
	}
	// Output: forest weight: 5
}
