// Package dfs implements depth-first search (single-source and forest) on
// a core.Graph of bag rules. An edge runs from an outer bag to each bag
// it directly contains; bags without their own rule are leaves.
//
// Key features:
//   - DFS(g, start, opts...): traverse from one bag or, with
//     WithFullTraversal, from every bag
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(B + C) (B = bags, C = content entries), plus hook overhead.
//   - Memory: O(B) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil      if g is nil.
//   - ErrBagNotFound   if start is unknown.
//   - context.Canceled if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/haversack/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers every bag; otherwise it starts only from
// start. Each bag is visited once, so cyclic rules terminate.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.Knows(start) {
		return nil, ErrBagNotFound
	}

	bags := allBags(g)
	res := &DFSResult{
		Order:   make([]string, 0, len(bags)),
		Depth:   make(map[string]int, len(bags)),
		Parent:  make(map[string]string, len(bags)),
		Visited: make(map[string]bool, len(bags)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, bag := range bags {
			if !res.Visited[bag] {
				if err := walker.traverse(bag, 0); err != nil {
					return res, err
				}
			}
		}

		return res, nil
	}

	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits bag at the given depth, recursing into its contents.
func (w *dfsWalker) traverse(bag string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[bag] = true
	w.res.Depth[bag] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(bag); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", bag, err)
		}
	}

	for _, inner := range w.graph.Contents(bag) {
		if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
			break
		}
		if w.res.Visited[inner] {
			continue
		}
		w.res.Parent[inner] = bag
		if err := w.traverse(inner, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(bag); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", bag, err)
		}
	}

	w.res.Order = append(w.res.Order, bag)

	return nil
}
