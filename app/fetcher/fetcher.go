package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Fetcher downloads raw feed documents over HTTP. It makes a single attempt
// per call; retry policy, if any, belongs to the caller.
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func New(userAgent string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 5,
			},
		},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// Run performs the HTTP GET and returns the raw response body. No character
// encoding is assumed here; decoding is the parser's concern.
func (f *Fetcher) Run(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, URL: url, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Kind: ErrHTTPStatus, URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(url, fmt.Errorf("failed to read response body: %w", err))
	}

	return data, nil
}

// classify separates timeouts from other network-level failures. An expired
// context deadline and a net.Error timeout are the same condition surfaced
// through different layers.
func classify(url string, err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Kind: ErrTimeout, URL: url, Err: err}
	}
	return &FetchError{Kind: ErrTransport, URL: url, Err: err}
}
