package containment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/haversack/dfs"
)

// nestedEntry is a memoized nested count together with the height of the
// bag's subtree (0 for a bag with nothing inside), so a cache hit can be
// checked against MaxDepth exactly like a fresh walk.
type nestedEntry struct {
	total  int64
	height int
}

// countWalker evaluates the weighted nested count for one query.
type countWalker struct {
	e      *Engine
	onPath map[string]bool
	path   []string
}

// CountNested returns how many bags must be packed inside one target bag,
// counting every nested instance at every level:
//
//	count(bag) = Σ c_i · (1 + count(b_i))
//
// Unknown and terminal bags count 0. Results are memoized per bag.
// A cycle yields a *dfs.CycleError; an int64 overflow ErrCountOverflow.
func (e *Engine) CountNested(target string) (int64, error) {
	w := &countWalker{e: e, onPath: make(map[string]bool)}
	entry, err := w.count(target, 0)
	if err != nil {
		return 0, err
	}

	return entry.total, nil
}

func (w *countWalker) count(bag string, depth int) (nestedEntry, error) {
	if entry, ok := w.e.nested.Get(bag); ok {
		// the memo skips the walk, not the bound
		if err := w.e.checkDepth(bag, depth+entry.height); err != nil {
			return nestedEntry{}, err
		}
		return entry, nil
	}
	if w.onPath[bag] {
		return nestedEntry{}, dfs.NewCycleError(w.path, bag)
	}
	if err := w.e.checkDepth(bag, depth); err != nil {
		return nestedEntry{}, err
	}

	rule, _ := w.e.graph.Rule(bag)
	w.onPath[bag] = true
	w.path = append(w.path, bag)

	var entry nestedEntry
	for _, c := range rule {
		inner, err := w.count(c.Bag, depth+1)
		if err != nil {
			return nestedEntry{}, err
		}
		if entry.total, err = accumulate(entry.total, c.Count, inner.total); err != nil {
			return nestedEntry{}, fmt.Errorf("%w: inside %q", err, bag)
		}
		entry.height = max(entry.height, inner.height+1)
	}

	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, bag)
	w.e.nested.Add(bag, entry)

	return entry, nil
}

// NestedTotals computes the nested count of every bag bottom-up, in
// reverse topological order, and primes the engine's memo with them.
// With MaxDepth set it fails when any bag nests deeper than the bound,
// as CountNested on that bag would.
func (e *Engine) NestedTotals() (map[string]int64, error) {
	order, err := dfs.TopologicalSort(e.graph)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]nestedEntry, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		bag := order[i]
		rule, _ := e.graph.Rule(bag)
		var entry nestedEntry
		for _, c := range rule {
			inner := entries[c.Bag]
			if entry.total, err = accumulate(entry.total, c.Count, inner.total); err != nil {
				return nil, fmt.Errorf("%w: inside %q", err, bag)
			}
			entry.height = max(entry.height, inner.height+1)
		}
		if err := e.checkDepth(bag, entry.height); err != nil {
			return nil, err
		}
		entries[bag] = entry
	}

	totals := make(map[string]int64, len(entries))
	for bag, entry := range entries {
		totals[bag] = entry.total
		e.nested.Add(bag, entry)
	}

	return totals, nil
}

// checkDepth returns ErrDepthExceeded when depth is beyond MaxDepth.
func (e *Engine) checkDepth(bag string, depth int) error {
	if e.opts.MaxDepth > 0 && depth > e.opts.MaxDepth {
		return fmt.Errorf("%w: %q below depth %d", ErrDepthExceeded, bag, e.opts.MaxDepth)
	}

	return nil
}

// accumulate returns total + count·(1 + inner), or ErrCountOverflow.
func accumulate(total, count, inner int64) (int64, error) {
	if inner == math.MaxInt64 {
		return 0, ErrCountOverflow
	}
	per := inner + 1
	if count > math.MaxInt64/per {
		return 0, ErrCountOverflow
	}
	per *= count
	if total > math.MaxInt64-per {
		return 0, ErrCountOverflow
	}

	return total + per, nil
}
