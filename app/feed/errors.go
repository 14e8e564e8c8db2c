package feed

import "fmt"

type ParseErrorKind string

const (
	ErrEncoding       ParseErrorKind = "encoding"
	ErrMalformed      ParseErrorKind = "malformed"
	ErrUnknownDialect ParseErrorKind = "unknown_dialect"
	ErrMissingChannel ParseErrorKind = "missing_channel"
)

// ParseError is the only error type parsers return. Every failure path maps
// to a named kind so callers can classify without matching message text.
type ParseError struct {
	Kind   ParseErrorKind
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("failed to parse feed (%s): %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("failed to parse feed (%s)", e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
