// File: api.go
// Role: The Store capability interface consumed by growth models.
// Policy:
//   - Growth code depends on Store only; *Graph is one implementation.
//   - Keep the interface minimal: adding a method here forces every
//     alternative store to implement it.

package core

// Store is the node/edge capability set the growth engine needs.
//
// Contract:
//   - AddEdgeReport is idempotent (a duplicate reports added=false) and
//     rejects u == v with ErrSelfLoop.
//   - Nodes returns ids in creation order; DegreeSnapshot aligns degrees with it.
//   - NextID returns max(existing ids)+1 (0 when empty).
type Store interface {
	AddNode(id int64, kind Kind) error
	AddEdgeReport(u, v int64) (added bool, err error)
	Degree(id int64) (int, error)
	DegreeSnapshot() ([]int64, []int)
	Nodes() []int64
	NodeCount() int
	NextID() int64
}

// compile-time check
var _ Store = (*Graph)(nil)
