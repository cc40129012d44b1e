// File: methods_clone.go
// Role: Cloning graph instances.
//
// AI-HINT (file):
//   - Clone keeps creation order and maxID, so NextID() on the clone matches
//     the source. Use it to replay growth steps from a fixed starting graph.

package core

// Clone returns a deep copy of the Graph: nodes, kinds, order and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:     make(map[int64]*node, len(g.nodes)),
		order:     make([]int64, len(g.order)),
		maxID:     g.maxID,
		edgeCount: g.edgeCount,
	}
	copy(clone.order, g.order)
	for id, n := range g.nodes {
		adj := make(map[int64]struct{}, len(n.adj))
		for v := range n.adj {
			adj[v] = struct{}{}
		}
		clone.nodes[id] = &node{kind: n.kind, adj: adj}
	}

	return clone
}
