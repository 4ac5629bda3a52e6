package containment

import (
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/haversack/bfs"
	"github.com/katalvlaran/haversack/core"
	"github.com/katalvlaran/haversack/dfs"
)

// Engine answers containment queries over one rule graph.
//
// New takes a private clone of the graph, so later changes to the
// caller's graph never reach the engine and memoized counts stay valid.
// An Engine is safe for concurrent use: per-query state lives in the
// query, and the nested-count memo is a synchronized LRU.
type Engine struct {
	graph  *core.Graph
	opts   Options
	nested *lru.Cache[string, nestedEntry]
}

// New builds an Engine over a snapshot of g.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
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

	cache, err := lru.New[string, nestedEntry](o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("containment: nested cache: %w", err)
	}

	return &Engine{graph: g.Clone(), opts: o, nested: cache}, nil
}

// Bags returns every outer bag known to the engine, sorted.
func (e *Engine) Bags() []string {
	return e.graph.Bags()
}

// Validate reports every containment cycle in the rules, joined into one
// error. Each part is a *dfs.CycleError; nil means the rules are acyclic.
func (e *Engine) Validate() error {
	has, cycles, err := dfs.DetectCycles(e.graph)
	if err != nil {
		return fmt.Errorf("containment: validate: %w", err)
	}
	if !has {
		return nil
	}
	errs := make([]error, 0, len(cycles))
	for _, c := range cycles {
		errs = append(errs, &dfs.CycleError{Path: c})
	}

	return errors.Join(errs...)
}

// Inside returns the distinct bag types found at any depth inside from,
// sorted. Unknown or terminal bags yield nil.
func (e *Engine) Inside(from string) ([]string, error) {
	if !e.graph.Knows(from) {
		return nil, nil
	}
	res, err := dfs.DFS(e.graph, from)
	if err != nil {
		return nil, fmt.Errorf("containment: inside %q: %w", from, err)
	}

	var out []string
	for bag := range res.Visited {
		if bag != from {
			out = append(out, bag)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Explain returns a shortest containment chain from → … → target, or nil
// when target cannot be found inside from. A bag is never reported as
// containing itself; Validate covers that case.
func (e *Engine) Explain(target, from string) ([]string, error) {
	if target == from || !e.graph.Knows(from) {
		return nil, nil
	}
	res, err := bfs.BFS(e.graph, from)
	if err != nil {
		return nil, fmt.Errorf("containment: explain %q in %q: %w", target, from, err)
	}
	if _, reached := res.Depth[target]; !reached {
		return nil, nil
	}

	return res.PathTo(target)
}

// CountBagsContaining counts the bag types in g that can eventually
// contain target.
func CountBagsContaining(g *core.Graph, target string) (int, error) {
	e, err := New(g)
	if err != nil {
		return 0, err
	}

	return e.CountContainers(target)
}

// CountBagsInside counts the bags required inside one target bag.
func CountBagsInside(g *core.Graph, target string) (int64, error) {
	e, err := New(g)
	if err != nil {
		return 0, err
	}

	return e.CountNested(target)
}
