package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feedsift/feedsift/app/cfg"
	"github.com/feedsift/feedsift/app/fetcher"
)

func NewHandler(contentFetcher ContentFetcher, parser FeedParser) *Handler {
	return &Handler{
		fetcher: contentFetcher,
		parser:  parser,
	}
}

// GetFeed fetches and normalizes the feed named by the url query parameter.
// Upstream failures map to gateway statuses; unparseable documents are 422.
func (h *Handler) GetFeed(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	data, err := h.fetcher.Run(c.Request.Context(), url)
	if err != nil {
		slog.Error("Feed fetch failed", "url", url, "error", err)
		c.JSON(fetchStatus(err), gin.H{"error": err.Error()})
		return
	}

	normalized, err := h.parser.Run(data)
	if err != nil {
		slog.Error("Feed parse failed", "url", url, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toFeedResponse(url, normalized))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":   cfg.Get().Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func fetchStatus(err error) int {
	var fetchErr *fetcher.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Kind == fetcher.ErrTimeout {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
