// Package dfs provides helper functions shared by DFS, cycle detection
// and topological sort: slice lookups, cycle signatures, Booth's
// minimal-rotation algorithm, and bag enumeration.
package dfs

import (
	"sort"
	"strings"

	"github.com/katalvlaran/haversack/core"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1 // not found
}

// JoinSig concatenates the elements of c with commas, producing a single
// string signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice of length len(s).
// Algorithm overview:
//  1. Duplicate the sequence to length 2n.
//  2. Maintain failure links f initialized to -1.
//  3. Track candidate k = 0; for j in 1..2n-1 adjust k on mismatches.
//  4. Extract the rotation starting at k.
//
// Time Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n) // s followed by s
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the best rotation so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1] // failure link lookup
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] { // smaller rotation starts here
				k = j - i - 1
			}
			i = f[i] // follow the link
		}
		if doubled[j] != doubled[k+i+1] { // mismatch with i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1 // extend match length
		}
	}

	// copy the n bags starting at k
	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}

// allBags returns every bag in g, outer or contained-only, sorted ascending.
func allBags(g *core.Graph) []string {
	outer := g.Bags()
	seen := make(map[string]struct{}, len(outer))
	for _, bag := range outer {
		seen[bag] = struct{}{}
	}
	out := append([]string(nil), outer...)
	for _, bag := range outer {
		for _, inner := range g.Contents(bag) {
			if _, ok := seen[inner]; !ok {
				seen[inner] = struct{}{}
				out = append(out, inner)
			}
		}
	}
	sort.Strings(out)

	return out
}
