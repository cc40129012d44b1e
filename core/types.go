// File: types.go
// Role: Node kinds, the Graph type, sentinel errors and the NewGraph constructor.
//
// Concurrency:
//   - A single sync.RWMutex guards the node catalog and adjacency sets.
//     Growth runs are sequential; the lock lets finished graphs be shared
//     read-only between analyzers.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called with an id already in use.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	// Growth models never produce one, so seeing it means an invariant broke.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Kind is the provenance tag recorded on a node when it is created.
type Kind uint8

const (
	// KindUntagged marks seed nodes and nodes created without provenance.
	KindUntagged Kind = iota
	// KindBarabasi marks nodes attached by preferential attachment.
	KindBarabasi
	// KindRandom marks nodes attached by independent Bernoulli trials.
	KindRandom
)

// String returns the lower-case kind name used in reports.
func (k Kind) String() string {
	switch k {
	case KindBarabasi:
		return "barabasi"
	case KindRandom:
		return "random"
	default:
		return "untagged"
	}
}

// Pair is an undirected edge with U < V.
type Pair struct {
	U, V int64
}

// node is the per-node record: provenance and the adjacency set.
type node struct {
	kind Kind
	adj  map[int64]struct{}
}

// Graph is a simple undirected graph with int64 node identifiers.
//
// order keeps creation order; maxID tracks the largest identifier so that
// NextID is O(1). edgeCount is maintained on insertion.
type Graph struct {
	mu sync.RWMutex

	nodes     map[int64]*node
	order     []int64
	maxID     int64
	edgeCount int
}

// NewGraph returns an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int64]*node),
		maxID: -1,
	}
}

// NewEmptyGraph returns a Graph holding n isolated, untagged nodes 0..n-1.
// A non-positive n yields an empty graph.
// Complexity: O(n)
func NewEmptyGraph(n int) *Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		// ids are fresh, AddNode cannot fail here
		_ = g.AddNode(int64(i), KindUntagged)
	}

	return g
}
