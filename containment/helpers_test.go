package containment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haversack/containment"
	"github.com/katalvlaran/haversack/core"
)

// exampleRules is the reference rule graph.
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

// deepRules is the second reference rule graph: a chain doubling at each level.
var deepRules = map[string][]core.Content{
	"shiny gold":  {{Bag: "dark red", Count: 2}},
	"dark red":    {{Bag: "dark orange", Count: 2}},
	"dark orange": {{Bag: "dark yellow", Count: 2}},
	"dark yellow": {{Bag: "dark green", Count: 2}},
	"dark green":  {{Bag: "dark blue", Count: 2}},
	"dark blue":   {{Bag: "dark violet", Count: 2}},
	"dark violet": {},
}

// cyclicRules hides a cycle below shiny gold: dark olive → vibrant plum → dark olive.
var cyclicRules = map[string][]core.Content{
	"light red":    {{Bag: "shiny gold", Count: 1}},
	"shiny gold":   {{Bag: "dark olive", Count: 1}},
	"dark olive":   {{Bag: "vibrant plum", Count: 2}},
	"vibrant plum": {{Bag: "dark olive", Count: 1}},
	"faded blue":   {},
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

// newEngine builds an Engine over rules.
func newEngine(t testing.TB, rules map[string][]core.Content, opts ...containment.Option) *containment.Engine {
	t.Helper()
	e, err := containment.New(buildGraph(t, rules), opts...)
	require.NoError(t, err)

	return e
}
