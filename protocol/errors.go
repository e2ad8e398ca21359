package protocol

import "fmt"

// ParseError reports a response line that does not match the wire format.
type ParseError struct {
	// Line is the offending line, terminator stripped
	Line string

	// Reason describes what failed to match
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response line %q: %s", e.Line, e.Reason)
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}
