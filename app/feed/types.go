package feed

// NormalizedFeed is the dialect-agnostic representation of a syndication
// feed. Optional fields use the empty string for "absent"; parsers never
// substitute placeholder text, that belongs to the presentation layer.
type NormalizedFeed struct {
	Title       string
	Description string
	Link        string
	Entries     []Entry
}

// Entry is a single feed item. Description carries raw, possibly
// HTML-bearing content; sanitization is a downstream concern.
type Entry struct {
	Title       string
	Link        string
	Description string
}

// identified reports whether the entry carries enough content to be worth
// keeping. Entries with neither a title nor a link are noise produced by
// malformed markup and are dropped.
func (e Entry) identified() bool {
	return e.Title != "" || e.Link != ""
}

// Dialect identifies a detected feed schema.
type Dialect string

const (
	DialectRSS2 Dialect = "rss2"
	DialectAtom Dialect = "atom"
)
