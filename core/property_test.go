package core_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/netgrowth/core"
)

const propertyNodes = 12

// TestGraph_SimpleInvariants checks that arbitrary AddEdge sequences keep the
// graph simple and the degree sum equal to twice the edge count.
func TestGraph_SimpleInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	pairGen := gen.SliceOf(gen.IntRange(0, propertyNodes*propertyNodes-1))

	properties.Property("no self-loops and no duplicates", prop.ForAll(
		func(codes []int) bool {
			g := core.NewEmptyGraph(propertyNodes)
			for _, c := range codes {
				u, v := int64(c/propertyNodes), int64(c%propertyNodes)
				err := g.AddEdge(u, v)
				if (u == v) != (err != nil) {
					return false
				}
			}
			seen := make(map[core.Pair]struct{})
			for _, e := range g.Edges() {
				if e.U >= e.V {
					return false
				}
				if _, dup := seen[e]; dup {
					return false
				}
				seen[e] = struct{}{}
			}
			return len(seen) == g.EdgeCount()
		},
		pairGen,
	))

	properties.Property("handshake lemma", prop.ForAll(
		func(codes []int) bool {
			g := core.NewEmptyGraph(propertyNodes)
			for _, c := range codes {
				_ = g.AddEdge(int64(c/propertyNodes), int64(c%propertyNodes))
			}
			sum := 0
			_, degrees := g.DegreeSnapshot()
			for _, d := range degrees {
				sum += d
			}
			return sum == 2*g.EdgeCount()
		},
		pairGen,
	))

	properties.TestingRun(t)
}
