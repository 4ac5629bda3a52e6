// Package dfs implements cycle detection for rule graphs.
// DetectCycles reports the containment cycles closed by back edges during
// a depth-first search with three-color marking. Every cyclic graph yields
// at least one cycle.
// Each cycle is canonicalised by its minimal rotation (Booth's algorithm)
// and the final list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(B + C + K·L)   (K = #cycles, L = avg cycle length)
//   - Memory: O(B + L_max)
package dfs

import (
	"sort"

	"github.com/katalvlaran/haversack/core"
)

// DetectCycles inspects g for containment cycles (a bag that ends up
// inside itself). Returns (true, cycles, nil) if any are found and
// (false, nil, nil) otherwise. A nil graph is treated as cycle-free.
// Each cycle is closed: [a b c a].
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	bags := g.Bags()
	d := &cycleDetector{
		graph: g,
		state: make(map[string]int, len(bags)),
		path:  make([]string, 0, len(bags)),
		seen:  make(map[string]struct{}),
	}
	for _, bag := range bags {
		if d.state[bag] == White {
			d.visit(bag)
		}
	}

	sort.Slice(d.cycles, func(i, j int) bool {
		return JoinSig(d.cycles[i]) < JoinSig(d.cycles[j])
	})

	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	return true, d.cycles, nil
}

// cycleDetector holds the coloring, current path and collected cycles.
type cycleDetector struct {
	graph  *core.Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

// visit marks bag Gray, explores its contents and records every back-edge
// into a Gray bag as a cycle.
func (d *cycleDetector) visit(bag string) {
	// 1) Gray: bag is on the current path
	d.state[bag] = Gray
	d.path = append(d.path, bag)

	// 2) Explore contents; a Gray neighbor closes a cycle
	for _, inner := range d.graph.Contents(bag) {
		switch d.state[inner] {
		case White:
			d.visit(inner)
		case Gray:
			d.record(inner)
		}
		// Black: finished earlier, nothing new below it
	}

	// 3) Backtrack and mark Black
	d.path = d.path[:len(d.path)-1]
	d.state[bag] = Black
}

// record extracts the cycle closing at start and keeps it if new.
func (d *cycleDetector) record(start string) {
	base := d.path[IndexOf(d.path, start):] // segment start → current bag
	rot := MinimalRotation(base)            // canonical starting point
	closed := append(rot, rot[0])

	// dedupe on the comma-joined signature
	sig := JoinSig(closed)
	if _, dup := d.seen[sig]; dup {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
