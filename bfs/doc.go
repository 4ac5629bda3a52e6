// Package bfs implements breadth-first search over bag containment rules.
//
// Starting from one bag, BFS visits the bags directly inside it, then the
// bags inside those, and so on. Each bag is visited once, at the smallest
// nesting depth it occurs, so cyclic rules terminate and
// BFSResult.PathTo(dest) returns a shortest chain start → … → dest.
//
// Options:
//
//   - WithContext(ctx)  cancellation
//   - WithOnVisit(fn)   per-bag hook; an error aborts the search
//   - WithMaxDepth(d)   stop below depth d (d == 0: unlimited, d < 0: ErrOptionViolation)
//
// Complexity: Time O(B + C), Memory O(B).
package bfs
