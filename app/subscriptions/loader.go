package subscriptions

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML feeds file and returns its enabled subscriptions in file
// order. A missing or empty feeds list is not an error.
func Load(path string) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var file feedsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file %s: %w", path, err)
	}

	subs := make([]Subscription, 0, len(file.Feeds))
	for i, sub := range file.Feeds {
		if sub.URL == "" {
			return nil, fmt.Errorf("invalid feeds file %s: feed at index %d has no url", path, i)
		}
		if sub.Disabled {
			slog.Debug("Subscription disabled, skipping", "name", sub.Name, "url", sub.URL)
			continue
		}
		subs = append(subs, sub)
	}

	slog.Debug("Loaded subscriptions", "path", path, "count", len(subs))
	return subs, nil
}

// URLs returns the subscription URLs in order.
func URLs(subs []Subscription) []string {
	urls := make([]string, 0, len(subs))
	for _, sub := range subs {
		urls = append(urls, sub.URL)
	}
	return urls
}
