// Package containment defines options and error definitions for the
// containment engine.
package containment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/haversack/dfs"
)

// DefaultCacheSize is the default number of per-bag nested counts kept
// by an Engine.
const DefaultCacheSize = 1024

// Sentinel errors for containment queries.
var (
	// ErrGraphNil is returned when New receives a nil graph.
	ErrGraphNil = errors.New("containment: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("containment: invalid option supplied")

	// ErrDepthExceeded is returned when a query nests deeper than MaxDepth.
	ErrDepthExceeded = errors.New("containment: nesting depth exceeded")

	// ErrCountOverflow is returned when a nested count does not fit in int64.
	ErrCountOverflow = errors.New("containment: nested count overflows int64")

	// ErrCycleDetected is matched by every cycle error a query returns.
	// The concrete error is a *dfs.CycleError carrying the cycle path.
	ErrCycleDetected = dfs.ErrCycleDetected
)

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Engine parameters.
type Options struct {
	// CacheSize bounds the per-bag nested-count memo. Default DefaultCacheSize.
	CacheSize int

	// MaxDepth, if positive, bounds the nesting depth a query may recurse
	// to. Default -1 (unbounded; cycles are still detected).
	MaxDepth int

	err error
}

// DefaultOptions returns Options with DefaultCacheSize and no depth bound.
func DefaultOptions() Options {
	return Options{
		CacheSize: DefaultCacheSize,
		MaxDepth:  -1,
	}
}

// WithCacheSize sets the nested-count memo size; n must be positive.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: CacheSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.CacheSize = n
	}
}

// WithMaxDepth bounds query recursion to n nesting levels; n must be positive.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}
