package containment_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haversack/containment"
	"github.com/katalvlaran/haversack/core"
	"github.com/katalvlaran/haversack/dfs"
)

// TestContainers_Example counts the reference containers of shiny gold.
func TestContainers_Example(t *testing.T) {
	e := newEngine(t, exampleRules)

	bags, err := e.Containers("shiny gold")
	require.NoError(t, err)
	assert.Equal(t, []string{"bright white", "light red", "muted yellow"}, bags)

	n, err := e.CountContainers("shiny gold")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestContainers_FullExample includes dark orange, giving the reference answer 4.
func TestContainers_FullExample(t *testing.T) {
	rules := make(map[string][]core.Content, len(exampleRules)+1)
	for k, v := range exampleRules {
		rules[k] = v
	}
	rules["dark orange"] = []core.Content{{Bag: "bright white", Count: 3}, {Bag: "muted yellow", Count: 4}}

	n, err := newEngine(t, rules).CountContainers("shiny gold")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

// TestCanContain covers direct, transitive, terminal and unknown cases.
func TestCanContain(t *testing.T) {
	e := newEngine(t, exampleRules)

	cases := []struct {
		target, from string
		want         bool
	}{
		{"shiny gold", "bright white", true},
		{"shiny gold", "light red", true},
		{"dotted black", "light red", true},
		{"light red", "shiny gold", false},
		{"shiny gold", "shiny gold", false},
		{"shiny gold", "faded blue", false},
		{"faded blue", "dotted black", false},
		{"shiny gold", "plaid magenta", false},
		{"plaid magenta", "light red", false},
	}
	for _, tc := range cases {
		got, err := e.CanContain(tc.target, tc.from)
		require.NoError(t, err, "%s in %s", tc.target, tc.from)
		assert.Equal(t, tc.want, got, "%s in %s", tc.target, tc.from)
	}
}

// TestCanContain_TerminalNeverContains holds for any target.
func TestCanContain_TerminalNeverContains(t *testing.T) {
	e := newEngine(t, exampleRules)
	for _, target := range append(e.Bags(), "plaid magenta") {
		got, err := e.CanContain(target, "dotted black")
		require.NoError(t, err)
		assert.False(t, got, target)
	}
}

// TestCanContain_Cycle fails safely instead of recursing forever.
func TestCanContain_Cycle(t *testing.T) {
	e := newEngine(t, cyclicRules)

	_, err := e.CanContain("faded blue", "light red")
	require.ErrorIs(t, err, containment.ErrCycleDetected)
	var cerr *dfs.CycleError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, []string{"dark olive", "vibrant plum", "dark olive"}, cerr.Path)

	// a direct hit short-circuits before the cycle is reached
	ok, err := e.CanContain("dark olive", "shiny gold")
	require.NoError(t, err)
	assert.True(t, ok)

	// branches not touching the cycle are unaffected
	ok, err = e.CanContain("shiny gold", "faded blue")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.Containers("faded blue")
	assert.ErrorIs(t, err, containment.ErrCycleDetected)
	_, err = e.CountContainers("faded blue")
	assert.ErrorIs(t, err, containment.ErrCycleDetected)
}

// TestCanContain_MaxDepth bounds recursion depth.
func TestCanContain_MaxDepth(t *testing.T) {
	e := newEngine(t, deepRules, containment.WithMaxDepth(3))

	_, err := e.CanContain("dark violet", "shiny gold")
	assert.ErrorIs(t, err, containment.ErrDepthExceeded)

	ok, err := e.CanContain("dark yellow", "shiny gold")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestContainers_DeclarationOrder gives the same answer whatever the entry order.
func TestContainers_DeclarationOrder(t *testing.T) {
	reversed := make(map[string][]core.Content, len(exampleRules))
	for bag, rule := range exampleRules {
		rev := make([]core.Content, len(rule))
		for i, c := range rule {
			rev[len(rule)-1-i] = c
		}
		reversed[bag] = rev
	}

	for _, target := range []string{"shiny gold", "faded blue", "dotted black", "light red"} {
		a, err := newEngine(t, exampleRules).Containers(target)
		require.NoError(t, err)
		b, err := newEngine(t, reversed).Containers(target)
		require.NoError(t, err)
		assert.Equal(t, a, b, target)
	}
}

// TestContainers_MaxDepthMatchesSingleQueries keeps the shared memo from
// hiding depth violations: Containers fails exactly when one of the
// per-bag queries on a fresh engine would.
func TestContainers_MaxDepthMatchesSingleQueries(t *testing.T) {
	bags := newEngine(t, exampleRules).Bags()

	for limit := 1; limit <= 4; limit++ {
		for _, target := range []string{"shiny gold", "faded blue", "dotted black"} {
			var want []string
			exceeded := false
			for _, bag := range bags {
				ok, err := newEngine(t, exampleRules, containment.WithMaxDepth(limit)).CanContain(target, bag)
				if errors.Is(err, containment.ErrDepthExceeded) {
					exceeded = true
					continue
				}
				require.NoError(t, err)
				if ok {
					want = append(want, bag)
				}
			}

			got, err := newEngine(t, exampleRules, containment.WithMaxDepth(limit)).Containers(target)
			if exceeded {
				assert.ErrorIs(t, err, containment.ErrDepthExceeded, "%s, limit %d", target, limit)
				continue
			}
			require.NoError(t, err, "%s, limit %d", target, limit)
			assert.Equal(t, want, got, "%s, limit %d", target, limit)
		}
	}
}

// TestContainers_UnrelatedCycle fails the scan even though target's own
// containers are acyclic, since every outer bag is walked.
func TestContainers_UnrelatedCycle(t *testing.T) {
	rules := map[string][]core.Content{
		"bright white": {{Bag: "shiny gold", Count: 1}},
		"shiny gold":   {},
		"dark olive":   {{Bag: "vibrant plum", Count: 1}},
		"vibrant plum": {{Bag: "dark olive", Count: 1}},
	}
	e := newEngine(t, rules)

	ok, err := e.CanContain("shiny gold", "bright white")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = e.CountContainers("shiny gold")
	assert.ErrorIs(t, err, containment.ErrCycleDetected)
}
