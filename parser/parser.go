package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/haversack/core"
)

const (
	ruleSeparator = " bags contain "
	noContents    = "no other bags"
	entrySep      = ", "
)

// ParseLine parses a single rule line into its outer bag and contents.
// A terminal rule ("no other bags") yields an empty, non-nil contents slice.
func ParseLine(line string) (string, []core.Content, error) {
	line = strings.TrimRight(line, "\r")

	outer, clause, ok := strings.Cut(line, ruleSeparator)
	if !ok {
		return "", nil, ErrMissingSeparator
	}
	outer = strings.TrimSpace(outer)
	if outer == "" {
		return "", nil, fmt.Errorf("%w: empty outer bag", ErrBadBagName)
	}

	clause = strings.TrimSpace(clause)
	if clause == "" {
		return "", nil, ErrEmptyContents
	}
	if strings.Contains(clause, noContents) {
		return outer, []core.Content{}, nil
	}

	entries := strings.Split(clause, entrySep)
	contents := make([]core.Content, 0, len(entries))
	for _, entry := range entries {
		c, err := parseEntry(entry)
		if err != nil {
			return "", nil, err
		}
		contents = append(contents, c)
	}

	return outer, contents, nil
}

// parseEntry parses "<count> <adjective> <noun> [bag|bags][.]".
func parseEntry(entry string) (core.Content, error) {
	fields := strings.Fields(entry)
	if len(fields) == 0 {
		return core.Content{}, fmt.Errorf("%w: empty entry", ErrBadBagName)
	}

	count, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return core.Content{}, fmt.Errorf("%w: %q", ErrBadCount, fields[0])
	}
	if count < 1 {
		return core.Content{}, fmt.Errorf("%w: %d", ErrBadCount, count)
	}

	switch len(fields) {
	case 3:
		if isBagNoun(fields[2]) {
			return core.Content{}, fmt.Errorf("%w: %q", ErrBadBagName, entry)
		}
		// noun omitted, the name carries the punctuation
		fields[2] = strings.TrimRight(fields[2], ".,")
		if fields[2] == "" {
			return core.Content{}, fmt.Errorf("%w: %q", ErrBadBagName, entry)
		}
	case 4:
		if !isBagNoun(fields[3]) {
			return core.Content{}, fmt.Errorf("%w: unexpected %q in %q", ErrBadBagName, fields[3], entry)
		}
	default:
		return core.Content{}, fmt.Errorf("%w: %q", ErrBadBagName, entry)
	}

	return core.Content{Bag: fields[1] + " " + fields[2], Count: count}, nil
}

// Parse builds a rule graph from lines. Blank lines are skipped. The first
// malformed line aborts the parse: the returned graph is nil and the error
// is a *ParseError. A repeated outer bag keeps its last rule.
func Parse(lines []string) (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(lines)))
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		if err := parseInto(g, i+1, line); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ParseAll builds a rule graph from every well-formed line and reports one
// *ParseError per malformed line, in input order. The graph is never nil.
func ParseAll(lines []string) (*core.Graph, []*ParseError) {
	g := core.NewGraph(core.WithCapacity(len(lines)))
	var errs []*ParseError
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		if err := parseInto(g, i+1, line); err != nil {
			errs = append(errs, err)
		}
	}

	return g, errs
}

// parseInto parses one line and stores its rule in g.
func parseInto(g *core.Graph, n int, line string) *ParseError {
	outer, contents, err := ParseLine(line)
	if err == nil {
		err = g.SetRule(outer, contents...)
	}
	if err != nil {
		return &ParseError{Line: n, Text: line, Err: err}
	}

	return nil
}

// ReadLines reads every line from r, blank ones included, so that a
// line's index + 1 is its line number in the source.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: read lines: %w", err)
	}

	return lines, nil
}

// ParseReader reads rule lines from r and parses them strictly.
func ParseReader(r io.Reader) (*core.Graph, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	return Parse(lines)
}

// isBagNoun reports whether tok is "bag" or "bags", ignoring trailing punctuation.
func isBagNoun(tok string) bool {
	tok = strings.TrimRight(tok, ".,")
	return tok == "bag" || tok == "bags"
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
