package containment

import "github.com/katalvlaran/haversack/dfs"

// reachEntry is a finished reachability answer for one bag plus the
// deepest level below it the answer had to look at.
type reachEntry struct {
	found  bool
	height int
}

// reachWalker answers "can target be found inside bag" for one target.
// memo holds finished answers and is shared across the bags of one query;
// onPath/path track the current recursion path for cycle detection.
type reachWalker struct {
	e      *Engine
	target string
	memo   map[string]reachEntry
	onPath map[string]bool
	path   []string
}

func (e *Engine) newReachWalker(target string) *reachWalker {
	n := e.graph.BagCount()

	return &reachWalker{
		e:      e,
		target: target,
		memo:   make(map[string]reachEntry, n),
		onPath: make(map[string]bool, n),
	}
}

// CanContain reports whether target appears, directly or transitively,
// inside from. Bags that are unknown or terminal contain nothing.
// A bag revisited on the current path yields a *dfs.CycleError.
func (e *Engine) CanContain(target, from string) (bool, error) {
	entry, err := e.newReachWalker(target).visit(from, 0)

	return entry.found, err
}

// Containers returns the outer bags that can eventually contain target,
// sorted ascending.
// Every outer bag is walked, so a cycle anywhere in the rules fails the
// whole query, even among bags unrelated to target.
func (e *Engine) Containers(target string) ([]string, error) {
	w := e.newReachWalker(target)
	var out []string
	for _, bag := range e.graph.Bags() {
		entry, err := w.visit(bag, 0)
		if err != nil {
			return nil, err
		}
		if entry.found {
			out = append(out, bag)
		}
	}

	return out, nil
}

// CountContainers counts the outer bags that can eventually contain target.
func (e *Engine) CountContainers(target string) (int, error) {
	bags, err := e.Containers(target)
	if err != nil {
		return 0, err
	}

	return len(bags), nil
}

// visit is the depth-first reachability step:
//  1. an empty or missing rule fails the branch;
//  2. target as a direct entry succeeds immediately;
//  3. otherwise recurse into each entry until one succeeds.
func (w *reachWalker) visit(bag string, depth int) (reachEntry, error) {
	if entry, ok := w.memo[bag]; ok {
		if err := w.e.checkDepth(bag, depth+entry.height); err != nil {
			return reachEntry{}, err
		}
		return entry, nil
	}
	if w.onPath[bag] {
		return reachEntry{}, dfs.NewCycleError(w.path, bag)
	}
	if err := w.e.checkDepth(bag, depth); err != nil {
		return reachEntry{}, err
	}

	rule, _ := w.e.graph.Rule(bag)
	if len(rule) == 0 {
		w.memo[bag] = reachEntry{}
		return reachEntry{}, nil
	}
	for _, c := range rule {
		if c.Bag == w.target {
			w.memo[bag] = reachEntry{found: true}
			return w.memo[bag], nil
		}
	}

	w.onPath[bag] = true
	w.path = append(w.path, bag)
	var entry reachEntry
	for _, c := range rule {
		inner, err := w.visit(c.Bag, depth+1)
		if err != nil {
			return reachEntry{}, err
		}
		entry.height = max(entry.height, inner.height+1)
		if inner.found {
			entry.found = true
			break
		}
	}
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, bag)
	w.memo[bag] = entry

	return entry, nil
}
