package sql

import "fmt"

// SyntaxError reports input text that does not match the grammar. It
// carries the source position and the offending token so callers can
// point at the exact spot in the query. A SyntaxError always rejects
// the whole query; the parser never recovers and never returns a
// partial AST.
type SyntaxError struct {
	Line     int    // 1-based line of the offending token
	Column   int    // 1-based column of the offending token
	Got      Token  // the token that failed to match
	Expected string // what the parser was looking for
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	got := e.Got.Type.String()
	if e.Got.Value != "" && e.Got.Type != TokenEOF {
		got = fmt.Sprintf("%s %q", got, e.Got.Value)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, got %s",
		e.Line, e.Column, e.Expected, got)
}

// newSyntaxError builds a SyntaxError positioned at tok.
func newSyntaxError(tok Token, expected string) *SyntaxError {
	return &SyntaxError{
		Line:     tok.Line,
		Column:   tok.Column,
		Got:      tok,
		Expected: expected,
	}
}
