package feed

import (
	"bytes"
	"cmp"
	"errors"
	"strings"

	"github.com/mmcdole/gofeed"
)

// GofeedParser is the library-backed engine. It delegates format detection
// and extraction to mmcdole/gofeed and converts the result into the same
// NormalizedFeed shape the native engine produces.
type GofeedParser struct {
	gofeedParser *gofeed.Parser
}

func NewGofeedParser() *GofeedParser {
	return &GofeedParser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *GofeedParser) Run(data []byte) (*NormalizedFeed, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
			return nil, &ParseError{Kind: ErrUnknownDialect, Detail: err.Error(), Err: err}
		}
		return nil, &ParseError{Kind: ErrMalformed, Detail: err.Error(), Err: err}
	}

	out := &NormalizedFeed{
		Title:       strings.TrimSpace(parsed.Title),
		Description: strings.TrimSpace(parsed.Description),
		Link:        strings.TrimSpace(parsed.Link),
	}

	for _, item := range parsed.Items {
		e := Entry{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: strings.TrimSpace(cmp.Or(item.Description, item.Content)),
		}
		if !e.identified() {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}
