package api

import (
	"context"

	"github.com/feedsift/feedsift/app/feed"
)

type ContentFetcher interface {
	Run(ctx context.Context, url string) ([]byte, error)
}

type FeedParser interface {
	Run(data []byte) (*feed.NormalizedFeed, error)
}

type Handler struct {
	fetcher ContentFetcher
	parser  FeedParser
}

type feedResponse struct {
	URL         string          `json:"url"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Link        string          `json:"link,omitempty"`
	Entries     []entryResponse `json:"entries"`
}

type entryResponse struct {
	Title       string `json:"title,omitempty"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
}

func toFeedResponse(url string, f *feed.NormalizedFeed) feedResponse {
	resp := feedResponse{
		URL:         url,
		Title:       f.Title,
		Description: f.Description,
		Link:        f.Link,
		Entries:     make([]entryResponse, 0, len(f.Entries)),
	}
	for _, entry := range f.Entries {
		resp.Entries = append(resp.Entries, entryResponse{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
		})
	}
	return resp
}
