// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node.
//   - BFSResult carries Order, Depth (node → hops) and Parent (node → predecessor).
//   - Hooks: OnVisit may abort the walk with an error.
//   - MaxDepth limits exploration (d > 0) or disables the limit (d == 0).
//   - Components partitions all nodes into connected components, largest first.
//
// Determinism
//
//	core.Graph.Neighbors returns ids sorted ascending and Components seeds
//	from Nodes() in creation order, so visit sequences are reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	sizes, err := bfs.Components(g)   // e.g. [997 1 1 1]
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors and context cancellation.
package bfs
