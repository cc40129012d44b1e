package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/bfs"
	"github.com/katalvlaran/netgrowth/core"
)

// ExampleComponents shows an isolated node left behind by growth.
func ExampleComponents() {
	g := core.NewEmptyGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	sizes, _ := bfs.Components(g)
	fmt.Println(sizes)

	// Output:
	// [3 1]
}
