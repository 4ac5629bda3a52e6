// Package bfs provides breadth-first search over a core.Graph of bag
// rules, returning nesting depths, parent links and visit order.
//
// BFS explores bags in increasing nesting depth from a start bag, so
// BFSResult.PathTo yields a shortest containment chain.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/haversack/core"
)

// queueItem pairs a bag with its BFS depth.
type queueItem struct {
	bag   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartBagNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
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
	if !g.Knows(start) {
		return nil, ErrStartBagNotFound
	}

	n := g.BagCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks bag visited at depth d, records its parent and queues it.
func (w *walker) enqueue(bag string, d int, parent string) {
	w.visited[bag] = true
	w.res.Depth[bag] = d
	if parent != "" {
		w.res.Parent[bag] = parent
	}
	w.queue = append(w.queue, queueItem{bag: bag, depth: d})
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

		w.res.Order = append(w.res.Order, item.bag)
		if err := w.opts.OnVisit(item.bag, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.bag, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, inner := range w.graph.Contents(item.bag) {
			if !w.visited[inner] {
				w.enqueue(inner, next, item.bag)
			}
		}
	}

	return nil
}
