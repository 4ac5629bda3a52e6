// Package dfs defines types and options for depth-first traversal of a
// rule graph, including cancellation, pre-/post-order hooks, depth
// limiting and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"strings"
)

// VertexState represents the DFS visitation state of a bag.
const (
	White = iota // White: the bag has not been visited yet.
	Gray         // Gray: the bag is on the current recursion path.
	Black        // Black: the bag and everything inside it are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrBagNotFound indicates that the start bag is neither an outer bag
	// nor referenced as contents anywhere in the graph.
	ErrBagNotFound = errors.New("dfs: start bag not found")

	// ErrCycleDetected indicates that a traversal revisited a bag already
	// on its current path. Every *CycleError matches it via errors.Is.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// CycleError reports the containment cycle a traversal ran into.
// Path is closed: its first and last elements are the same bag.
type CycleError struct {
	Path []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return ErrCycleDetected.Error() + ": " + strings.Join(e.Path, " → ")
}

// Is lets errors.Is(err, ErrCycleDetected) match any *CycleError.
func (e *CycleError) Is(target error) bool { return target == ErrCycleDetected }

// NewCycleError builds a *CycleError from the current recursion path and
// the bag that closes the loop. path must contain back.
func NewCycleError(path []string, back string) *CycleError {
	idx := IndexOf(path, back)
	if idx < 0 {
		idx = 0
	}
	cycle := make([]string, 0, len(path)-idx+1)
	cycle = append(cycle, path[idx:]...)
	cycle = append(cycle, back)

	return &CycleError{Path: cycle}
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a bag is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(bag string) error

	// OnExit, if non-nil, is invoked after everything inside a bag has been
	// explored (post-order), before the bag is appended to Order.
	OnExit func(bag string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start bag. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, runs DFS from every unvisited bag, covering
	// disconnected components. Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(bag string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(bag string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start bag is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables full-graph traversal: DFS restarts from each
// unvisited bag.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records bags in the sequence they finished (post-order).
	Order []string

	// Depth maps each bag to its nesting level below the start.
	Depth map[string]int

	// Parent maps each bag to the bag it was first found inside.
	// Roots do not appear in this map.
	Parent map[string]string

	// Visited flags which bags were reached.
	Visited map[string]bool
}
