// Package core provides the thread-safe in-memory rule graph that every
// other haversack package queries.
//
// The graph maps an outer bag type to its containment rule, the list of
// (contained bag, multiplicity) pairs packed directly inside it:
//
//	light red    → 1 bright white, 2 muted yellow
//	bright white → 1 shiny gold
//	faded blue   → (nothing)
//
// Properties:
//
//   - Bags are plain string identifiers, compared by value.
//   - A bag with an empty rule is a terminal.
//   - A contained bag need not have its own entry; it is queried as a terminal.
//   - SetRule on an existing outer bag overwrites it (last write wins).
//   - Deterministic iteration: Bags() and Contents() return sorted results.
//   - A sync.RWMutex guards storage; concurrent readers are safe.
//
// Core Methods:
//
//	SetRule(outer string, contents ...Content) error // O(d)
//	Rule(bag string) ([]Content, bool)               // O(d)
//	HasBag(bag string) bool                          // O(1)
//	Knows(bag string) bool                           // O(1) outer, O(C) otherwise
//	Bags() []string                                  // O(B log B)
//	Contents(bag string) []string                    // O(d log d)
//	AdjacencyList() map[string][]string              // O(B + C log C)
//	BagCount() int / ContentCount() int
//	Clone() *Graph                                   // O(B + C)
//	Equal(other *Graph) bool                         // O(B + C)
//
// Errors:
//
//	ErrEmptyBagID - empty outer or contained bag ID.
//	ErrBadCount   - multiplicity below one.
package core
