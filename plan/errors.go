package plan

import "fmt"

// MalformedPredicateError reports a spatial predicate that parsed but
// is semantically invalid: a non-positive or non-integer neighbor
// count, or a point coordinate that is neither a column reference nor
// a numeric literal. The query is rejected as a whole.
type MalformedPredicateError struct {
	Reason string
}

// Error implements the error interface.
func (e *MalformedPredicateError) Error() string {
	return "malformed spatial predicate: " + e.Reason
}

func malformedPredicatef(format string, args ...interface{}) *MalformedPredicateError {
	return &MalformedPredicateError{Reason: fmt.Sprintf(format, args...)}
}
