package batch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/feedsift/feedsift/app/feed"
)

// ContentFetcher downloads raw feed bytes for a URL.
type ContentFetcher interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

// FeedParser normalizes raw feed bytes.
type FeedParser interface {
	Run(data []byte) (*feed.NormalizedFeed, error)
}

// Result pairs a processed URL with its outcome. Exactly one of Feed and Err
// is set.
type Result struct {
	URL  string
	Feed *feed.NormalizedFeed
	Err  error
}

// Runner drives fetch+normalize pipelines for a batch of URLs across a
// bounded worker pool. Feeds are independent: a failure is recorded in its
// own Result and never aborts the rest of the batch.
type Runner struct {
	fetcher     ContentFetcher
	parser      FeedParser
	workerCount int
}

func NewRunner(fetcher ContentFetcher, parser FeedParser, workerCount int) *Runner {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Runner{
		fetcher:     fetcher,
		parser:      parser,
		workerCount: workerCount,
	}
}

// Run processes every URL and returns one Result per URL, in input order.
func (r *Runner) Run(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.process(ctx, urls[i])
			}
		}()
	}

feeding:
	for i := range urls {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Jobs are dispatched in order, so everything from i on is
			// still unassigned.
			for j := i; j < len(urls); j++ {
				results[j] = Result{URL: urls[j], Err: ctx.Err()}
			}
			break feeding
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Runner) process(ctx context.Context, url string) Result {
	slog.Debug("Processing feed", "url", url)

	data, err := r.fetcher.Run(ctx, url)
	if err != nil {
		return Result{URL: url, Err: err}
	}

	parsed, err := r.parser.Run(data)
	if err != nil {
		return Result{URL: url, Err: err}
	}

	slog.Debug("Feed processed", "url", url, "entries", len(parsed.Entries))
	return Result{URL: url, Feed: parsed}
}
