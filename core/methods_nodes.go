// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns identifiers in creation order.
//   - NextID() is max(existing)+1, independent of removal history (there is none).

package core

import "fmt"

// AddNode inserts a node with the given id and provenance tag.
//
// Returns ErrDuplicateNode if the id is already present. Growth models derive
// ids from NextID, so a collision always points at a caller bug.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int64, kind Kind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &node{kind: kind, adj: make(map[int64]struct{})}
	g.order = append(g.order, id)
	if id > g.maxID {
		g.maxID = id
	}

	return nil
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Kind returns the provenance tag of id.
func (g *Graph) Kind(id int64) (Kind, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return KindUntagged, fmt.Errorf("Kind(%d): %w", id, ErrNodeNotFound)
	}

	return n.kind, nil
}

// NextID returns the identifier a newly grown node should take:
// max(existing ids)+1, or 0 for an empty graph.
// Complexity: O(1).
func (g *Graph) NextID() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxID + 1
}

// Nodes returns all node ids in creation order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int64, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// KindCounts tallies nodes per provenance tag.
// Complexity: O(V).
func (g *Graph) KindCounts() map[Kind]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[Kind]int, 3)
	for _, id := range g.order {
		out[g.nodes[id].kind]++
	}

	return out
}
