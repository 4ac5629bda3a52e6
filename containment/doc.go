// Package containment answers the two bag-rule questions over a
// core.Graph:
//
//   - reachability: can bag X eventually be found inside bag Y?
//     (CanContain, Containers, CountContainers)
//   - weighted transitive count: how many bags, multiplicities included,
//     must be packed inside one bag Y? (CountNested, NestedTotals)
//
// Plus helpers to explain and inspect the rules: Explain (a shortest
// containment chain), Inside (every bag type nested in Y) and Validate
// (all containment cycles).
//
// Unknown bags are never errors: they contain nothing, so reachability is
// false and the nested count is 0. A rule set where a bag ends up inside
// itself makes the affected query fail with a *dfs.CycleError
// (errors.Is(err, ErrCycleDetected)) instead of recursing forever; other
// queries are unaffected.
//
// Quick start:
//
//	g, _ := parser.ParseReader(input)
//	n, _ := containment.CountBagsContaining(g, "shiny gold")
//	m, _ := containment.CountBagsInside(g, "shiny gold")
//
// Options:
//
//   - WithCacheSize(n)  bound on memoized nested counts (default 1024)
//   - WithMaxDepth(n)   bound on query nesting depth (ErrDepthExceeded)
//
// Complexity: each query is O(B + C) with memoization (B = bags,
// C = content entries).
package containment
