// File: methods.go
// Role: Rule lifecycle & queries: SetRule/Rule/HasBag/Knows/Bags/Contents/BagCount/ContentCount.
// Determinism:
//   - Bags() and Contents() return names sorted lexicographically ascending.
//   - Rule() returns entries in declaration order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "sort"

// SetRule inserts or overwrites the containment rule of outer.
// Calling it twice for the same outer bag keeps only the last rule.
// An empty contents list records outer as a terminal bag.
//
// Steps:
//  1. Validate outer and every content (ErrEmptyBagID, ErrBadCount).
//  2. Copy contents so later caller mutations cannot leak in.
//  3. Store under the write lock.
//
// Complexity: O(len(contents)).
func (g *Graph) SetRule(outer string, contents ...Content) error {
	if outer == "" {
		return ErrEmptyBagID
	}
	for _, c := range contents {
		if c.Bag == "" {
			return ErrEmptyBagID
		}
		if c.Count < 1 {
			return ErrBadCount
		}
	}

	rule := make([]Content, len(contents))
	copy(rule, contents)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules[outer] = rule

	return nil
}

// Rule returns a copy of the containment rule of bag.
// The boolean is false when bag has no entry; that is not an error, a
// missing bag contains nothing.
// Complexity: O(len(rule)).
func (g *Graph) Rule(bag string) ([]Content, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rule, ok := g.rules[bag]
	if !ok {
		return nil, false
	}
	out := make([]Content, len(rule))
	copy(out, rule)

	return out, true
}

// HasBag reports whether bag has its own rule entry.
// Complexity: O(1).
func (g *Graph) HasBag(bag string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.rules[bag]

	return ok
}

// Knows reports whether bag has its own rule entry or appears inside
// any rule.
// Complexity: O(1) for outer bags, O(C) otherwise.
func (g *Graph) Knows(bag string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.rules[bag]; ok {
		return true
	}
	for _, rule := range g.rules {
		for _, c := range rule {
			if c.Bag == bag {
				return true
			}
		}
	}

	return false
}

// Bags returns every outer bag, sorted ascending.
// Complexity: O(B log B).
func (g *Graph) Bags() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.rules))
	for bag := range g.rules {
		out = append(out, bag)
	}
	sort.Strings(out)

	return out
}

// Contents returns the names of the bags directly inside bag, sorted
// ascending and deduplicated. Unknown bags yield nil.
// Complexity: O(d log d).
func (g *Graph) Contents(bag string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rule := g.rules[bag]
	if len(rule) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(rule))
	out := make([]string, 0, len(rule))
	for _, c := range rule {
		if _, dup := seen[c.Bag]; dup {
			continue
		}
		seen[c.Bag] = struct{}{}
		out = append(out, c.Bag)
	}
	sort.Strings(out)

	return out
}

// AdjacencyList returns a snapshot mapping each outer bag to the sorted
// names of the bags it directly contains.
// Complexity: O(B + C log C).
func (g *Graph) AdjacencyList() map[string][]string {
	bags := g.Bags()
	out := make(map[string][]string, len(bags))
	for _, bag := range bags {
		out[bag] = g.Contents(bag)
	}

	return out
}

// BagCount returns the number of outer bags with a rule entry.
func (g *Graph) BagCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rules)
}

// ContentCount returns the total number of content entries across all rules.
func (g *Graph) ContentCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, rule := range g.rules {
		n += len(rule)
	}

	return n
}
