package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haversack/core"
)

// exampleRules mirrors the reference puzzle rules.
var exampleRules = map[string][]core.Content{
	"light red":    {{Bag: "bright white", Count: 1}, {Bag: "muted yellow", Count: 2}},
	"bright white": {{Bag: "shiny gold", Count: 1}},
	"muted yellow": {{Bag: "shiny gold", Count: 2}, {Bag: "faded blue", Count: 9}},
	"shiny gold":   {{Bag: "dark olive", Count: 1}, {Bag: "vibrant plum", Count: 2}},
	"dark olive":   {{Bag: "faded blue", Count: 3}, {Bag: "dotted black", Count: 4}},
	"vibrant plum": {{Bag: "faded blue", Count: 5}, {Bag: "dotted black", Count: 6}},
	"faded blue":   {},
	"dotted black": {},
}

// buildGraph creates a rule graph from rules, failing the test on error.
func buildGraph(t testing.TB, rules map[string][]core.Content) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(len(rules)))
	for outer, contents := range rules {
		require.NoError(t, g.SetRule(outer, contents...))
	}

	return g
}

// chain builds outer → inner rules with multiplicity 1 from consecutive pairs.
func chain(bags ...string) map[string][]core.Content {
	rules := make(map[string][]core.Content, len(bags))
	for i := 0; i+1 < len(bags); i++ {
		rules[bags[i]] = append(rules[bags[i]], core.Content{Bag: bags[i+1], Count: 1})
	}

	return rules
}

// position returns index of v in slice or -1 if not found.
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}
