// File: methods_clone.go
// Role: Cloning and content equality of rule graphs.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the Graph.
// Complexity: O(B + C).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.rules)))
	for bag, rule := range g.rules {
		cp := make([]Content, len(rule))
		copy(cp, rule)
		clone.rules[bag] = cp
	}

	return clone
}

// Equal reports whether g and other hold the same rules. Entry order
// within a rule and insertion order of outer bags are irrelevant;
// repeated entries for the same contained bag are compared by their
// summed multiplicity.
// Complexity: O(B + C).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(g.rules) != len(other.rules) {
		return false
	}
	for bag, rule := range g.rules {
		otherRule, ok := other.rules[bag]
		if !ok {
			return false
		}
		if !sameMultiset(rule, otherRule) {
			return false
		}
	}

	return true
}

// sameMultiset compares two rules as bag → total count maps.
func sameMultiset(a, b []Content) bool {
	totals := make(map[string]int64, len(a))
	for _, c := range a {
		totals[c.Bag] += c.Count
	}
	for _, c := range b {
		totals[c.Bag] -= c.Count
	}
	for _, v := range totals {
		if v != 0 {
			return false
		}
	}

	return true
}
