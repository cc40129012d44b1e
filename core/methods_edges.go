// File: methods_edges.go
// Role: Edge insertion and queries.
//
// Determinism:
//   - Edges() returns pairs with U<V sorted by (U,V) ascending.
//
// AI-HINT (file):
//   - AddEdge is idempotent: re-adding an existing pair is a silent no-op and
//     never raises multiplicity. Use AddEdgeReport when the caller needs to
//     know whether the edge was new.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with an undirected edge.
//
// Steps:
//  1. Reject u == v with ErrSelfLoop.
//  2. Lock; both endpoints must exist (ErrNodeNotFound).
//  3. If the pair is already adjacent, return nil (no-op).
//  4. Mirror the pair into both adjacency sets and bump edgeCount.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int64) error {
	_, err := g.AddEdgeReport(u, v)

	return err
}

// AddEdgeReport is AddEdge that also reports whether a new edge was stored.
// added is false when the pair was already connected.
func (g *Graph) AddEdgeReport(u, v int64) (added bool, err error) {
	if u == v {
		return false, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nu, ok := g.nodes[u]
	if !ok {
		return false, fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrNodeNotFound)
	}
	nv, ok := g.nodes[v]
	if !ok {
		return false, fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrNodeNotFound)
	}
	if _, dup := nu.adj[v]; dup {
		return false, nil
	}
	nu.adj[v] = struct{}{}
	nv.adj[u] = struct{}{}
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether u and v are adjacent. Missing nodes ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nu, ok := g.nodes[u]
	if !ok {
		return false
	}
	_, ok = nu.adj[v]

	return ok
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once as a Pair with U<V, sorted ascending.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Pair {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Pair, 0, g.edgeCount)
	for u, n := range g.nodes {
		for v := range n.adj {
			if u < v {
				out = append(out, Pair{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
