package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/netgrowth/core"
)

type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int64]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
func BFS(g *core.Graph, start int64, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// Components returns the sizes of the connected components of g, largest
// first. Every node, isolated ones included, belongs to exactly one.
func Components(g *core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.MaxDepth = 0

	w := newWalker(g, o)
	var sizes []int
	for _, id := range g.Nodes() {
		if w.visited[id] {
			continue
		}
		before := len(w.res.Order)
		w.enqueue(id, 0, id, false)
		if err := w.loop(); err != nil {
			return nil, err
		}
		sizes = append(sizes, len(w.res.Order)-before)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes, nil
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.NodeCount()
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int64]bool, n),
		res: &BFSResult{
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}
}

// enqueue marks id visited at depth d and records its parent when hasParent.
func (w *walker) enqueue(id int64, d int, parent int64, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr, next, item.id, true)
			}
		}
	}

	return nil
}
