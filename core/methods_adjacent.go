// File: methods_adjacent.go
// Role: Degree and neighborhood queries consumed by growth models and analyzers.
//
// Determinism:
//   - Neighbors() returns ids sorted ascending.
//   - DegreeSnapshot() follows creation order, aligned with Nodes().

package core

import (
	"fmt"
	"sort"
)

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(n.adj), nil
}

// DegreeSnapshot returns node ids in creation order together with their
// degrees, taken under a single read lock.
func (g *Graph) DegreeSnapshot() ([]int64, []int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int64, len(g.order))
	deg := make([]int, len(g.order))
	for i, id := range g.order {
		ids[i] = id
		deg[i] = len(g.nodes[id].adj)
	}

	return ids, deg
}

// Neighbors returns the ids adjacent to id, sorted ascending.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]int64, 0, len(n.adj))
	for v := range n.adj {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// NeighborAverageDegree returns the mean degree of id's neighbors.
// An isolated node has average 0.
// Complexity: O(d).
func (g *Graph) NeighborAverageDegree(id int64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("NeighborAverageDegree(%d): %w", id, ErrNodeNotFound)
	}
	if len(n.adj) == 0 {
		return 0, nil
	}
	sum := 0
	for v := range n.adj {
		sum += len(g.nodes[v].adj)
	}

	return float64(sum) / float64(len(n.adj)), nil
}
