// Package parser turns bag containment rule text into a core.Graph.
//
// Grammar (one rule per line):
//
//	<outer> bags contain <count> <adjective> <noun> bag(s), ... .
//	<outer> bags contain no other bags.
//
// Example:
//
//	light red bags contain 1 bright white bag, 2 muted yellow bags.
//	faded blue bags contain no other bags.
//
// Functions:
//
//   - ParseLine(line) (outer, contents, error)     one rule line
//   - Parse(lines) (*core.Graph, error)             strict: first bad line aborts, no graph returned
//   - ParseAll(lines) (*core.Graph, []*ParseError)  lenient: graph from valid lines + per-line errors
//   - ReadLines(r) ([]string, error)                line source over any io.Reader
//   - ParseReader(r) (*core.Graph, error)           ReadLines + Parse
//
// Errors:
//
//   - ErrParse             matched by every *ParseError
//   - ErrMissingSeparator  no " bags contain " in the line
//   - ErrEmptyContents     nothing after the separator
//   - ErrBadCount          count token is not an integer >= 1
//   - ErrBadBagName        outer or contained bag name is malformed
package parser
