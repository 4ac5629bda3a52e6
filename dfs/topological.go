// Package dfs provides topological ordering of rule graphs.
//
// TopologicalSort orders bags so that every outer bag precedes the bags it
// contains. If the rules are cyclic, a *CycleError is returned.
//
// Complexity:
//
//   - Time:   O(B + C)
//   - Memory: O(B)
package dfs

import (
	"context"

	"github.com/katalvlaran/haversack/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	path  []string
	order []string
}

// TopologicalSort computes an ordering of every bag in g (outer and
// contained-only) in which each outer bag appears before its contents.
// Roots are explored in ascending name order, so the result is
// deterministic.
// If g is nil, returns ErrGraphNil.
// If a cycle is found, returns a *CycleError (errors.Is ErrCycleDetected).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	bags := allBags(g)
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(bags)),
		order: make([]string, 0, len(bags)),
	}
	for _, bag := range bags {
		if sorter.state[bag] == White {
			if err := sorter.visit(bag); err != nil {
				return nil, err
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from bag, marking states and detecting cycles.
func (t *topoSorter) visit(bag string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[bag] {
	case Gray:
		return NewCycleError(t.path, bag)
	case Black:
		return nil
	}

	t.state[bag] = Gray
	t.path = append(t.path, bag)
	for _, inner := range t.graph.Contents(bag) {
		if err := t.visit(inner); err != nil {
			return err
		}
	}
	t.path = t.path[:len(t.path)-1]
	t.state[bag] = Black
	t.order = append(t.order, bag)

	return nil
}
