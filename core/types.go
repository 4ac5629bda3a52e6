// Package core defines the rule graph: a mapping from an outer bag to the
// bags it directly contains, with their multiplicities.
//
// This file declares Content, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyBagID - bag identifier is the empty string.
//	ErrBadCount   - content multiplicity is below one.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyBagID indicates that an outer or contained bag has an empty ID.
	ErrEmptyBagID = errors.New("core: bag ID is empty")

	// ErrBadCount indicates a content multiplicity below one.
	ErrBadCount = errors.New("core: content count must be at least 1")
)

// Content is one entry of a containment rule: Count bags of type Bag
// packed directly inside the outer bag.
type Content struct {
	// Bag is the contained bag type.
	Bag string

	// Count is the multiplicity of Bag inside the outer bag (>= 1).
	Count int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the rule storage for n outer bags.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory rule graph.
//
// rules maps an outer bag to its containment rule. A bag present with an
// empty rule is a terminal ("contains no other bags"). Bags referenced only
// as contents have no entry and are queried as terminals.
// mu guards rules, so a built graph can be read from many goroutines.
type Graph struct {
	mu sync.RWMutex

	capacity int
	rules    map[string][]Content
}

// NewGraph creates an empty rule graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.rules = make(map[string][]Content, g.capacity)

	return g
}
