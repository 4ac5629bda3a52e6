// Package dfs implements depth-first traversal, cycle detection and
// topological sort over a core.Graph of bag containment rules.
//
// What:
//
//   - DFS: explores as far as possible inside each bag before
//     backtracking. Supports pre-/post-order hooks, cancellation via
//     context.Context, depth limiting and full-graph traversal.
//   - DetectCycles: enumerates every simple containment cycle using vertex
//     coloring (White, Gray, Black) with back-edge recording and canonical
//     minimal-rotation deduplication.
//   - TopologicalSort: orders bags outer-first, returning a *CycleError if
//     a bag ends up inside itself.
//
// Why:
//   - Puzzle input is acyclic by construction, but nothing in the rule
//     grammar enforces it. These routines turn "a bag inside itself" into a
//     reportable error instead of unbounded recursion.
//   - TopologicalSort gives containment queries a bottom-up evaluation order.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option / DFSOptions: functional options for DFS behavior
//   - DFSResult: post-order, Depth, Parent, Visited maps
//   - CycleError: closed cycle path, matches ErrCycleDetected
//
// Complexity:
//
//   - DFS:             Time O(B+C), Memory O(B)
//   - DetectCycles:    Time O(B+C + K·L), Memory O(B+L_max)
//   - TopologicalSort: Time O(B+C), Memory O(B)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrBagNotFound    start bag not in graph
//   - ErrCycleDetected  cycle discovered (via *CycleError)
//   - context.Canceled  traversal canceled via context
//   - hook errors       propagated from OnVisit or OnExit
package dfs
