// Package core provides the in-memory simple graph that every growth model
// in netgrowth mutates and every analyzer reads.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: at most one edge per unordered pair,
//     never a self-loop.
//   - Nodes are int64 identifiers kept in creation order; NextID() returns
//     max(existing)+1 so growth models can name new nodes without a counter.
//   - Each node carries a Kind tag (untagged, barabasi, random) recorded at
//     creation and used for provenance only.
//   - Degrees are derived from adjacency sets on demand; nothing is cached.
//
// Growth code depends on the Store interface, not on *Graph, so alternative
// storage can be plugged in without touching the models.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int64, kind Kind) error     // O(1)
//	HasNode(id int64) bool                 // O(1)
//	Kind(id int64) (Kind, error)           // O(1)
//	NextID() int64                         // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int64) error              // O(1), idempotent
//	HasEdge(u, v int64) bool               // O(1)
//
//	// Query
//	Nodes() []int64                        // O(V), creation order
//	Edges() []Pair                         // O(E·log E), sorted
//	Neighbors(id int64) ([]int64, error)   // O(d·log d), sorted
//	Degree(id int64) (int, error)          // O(1)
//	DegreeSnapshot() ([]int64, []int)      // O(V), creation order
//	NeighborAverageDegree(id int64) (float64, error) // O(d)
//	NodeCount(), EdgeCount()               // O(1)
//
// Errors:
//
//	ErrNodeNotFound  – operation referenced a missing node
//	ErrDuplicateNode – AddNode with an id already present
//	ErrSelfLoop      – AddEdge(u, u)
package core
