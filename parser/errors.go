package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for rule parsing.
var (
	// ErrParse is matched by every *ParseError via errors.Is.
	ErrParse = errors.New("parser: malformed rule")

	// ErrMissingSeparator indicates a line without " bags contain ".
	ErrMissingSeparator = errors.New("parser: missing \" bags contain \" separator")

	// ErrEmptyContents indicates nothing follows the separator.
	ErrEmptyContents = errors.New("parser: empty contents clause")

	// ErrBadCount indicates a content count that is not an integer >= 1.
	ErrBadCount = errors.New("parser: bad content count")

	// ErrBadBagName indicates a malformed outer or contained bag name.
	ErrBadBagName = errors.New("parser: bad bag name")
)

// ParseError reports a rule line that does not match the grammar.
// Line is the 1-based position of the line in the input, blank lines
// included, so it matches the file line for input read with ReadLines.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying cause (ErrBadCount, ErrBadBagName, ...).
func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
