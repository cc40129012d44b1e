package builder_test

import (
	"fmt"

	"github.com/katalvlaran/netgrowth/builder"
	"github.com/katalvlaran/netgrowth/core"
)

// ExampleNoPreferentialAttachment grows model A; counts are fixed by n and m.
func ExampleNoPreferentialAttachment() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(2024)},
		builder.NoPreferentialAttachment(20, 3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount())

	// Output:
	// 20 51
}

// ExampleSchedule alternates preferential and random insertions.
func ExampleSchedule() {
	steps, _ := builder.ParsePattern("BR", 1, 0.5)
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.Schedule(2, 10, steps...),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	kinds := g.KindCounts()
	fmt.Println(g.NodeCount(), kinds[core.KindBarabasi], kinds[core.KindRandom])

	// Output:
	// 12 5 5
}
