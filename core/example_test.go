package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// ExampleGraph builds a small weighted path and lists the arcs of its middle node.
func ExampleGraph() {
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(2, 3, 1)

	for _, a := range g.Neighbors(2) {
		fmt.Printf("2→%d (w=%d)\n", a.To, a.Weight)
	}
	// Output:
	// 2→1 (w=4)
	// 2→3 (w=1)
}
