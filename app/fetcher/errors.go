package fetcher

import "fmt"

type FetchErrorKind string

const (
	ErrTimeout    FetchErrorKind = "timeout"
	ErrHTTPStatus FetchErrorKind = "http_status"
	ErrTransport  FetchErrorKind = "transport"
)

// FetchError classifies a failed feed download. Exactly one kind applies to
// any failure; StatusCode is set only for ErrHTTPStatus.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrTimeout:
		return fmt.Sprintf("failed to fetch %s: request timed out", e.URL)
	case ErrHTTPStatus:
		return fmt.Sprintf("failed to fetch %s: unexpected HTTP status %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
