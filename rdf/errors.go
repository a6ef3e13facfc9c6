package rdf

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates an unsupported serialization format.
var ErrUnsupportedFormat = errors.New("unsupported RDF format")

// ParseError provides line context for parse failures.
type ParseError struct {
	// Format is the format being parsed (e.g. "ntriples").
	Format string
	// Line is the 1-based line number (0 if unknown).
	Line int
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds format and line context to a parse error.
func wrapParseError(format string, line int, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Line: line, Err: err}
}
