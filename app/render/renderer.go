package render

import (
	"fmt"
	"strings"

	"github.com/feedsift/feedsift/app/feed"
)

const DefaultWrapWidth = 80

// Renderer formats normalized feeds for terminal output. Placeholder text
// for missing fields is applied here and only here; the core types carry
// absent fields as empty strings.
type Renderer struct {
	wrapWidth int
}

func NewRenderer(wrapWidth int) *Renderer {
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}
	return &Renderer{wrapWidth: wrapWidth}
}

func (r *Renderer) Run(url string, f *feed.NormalizedFeed) string {
	var b strings.Builder
	separator := strings.Repeat("-", r.wrapWidth+4)

	b.WriteString(separator)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Feed Source: %s\n", url)

	title := f.Title
	if title == "" {
		title = "No Title Found"
	}
	fmt.Fprintf(&b, "\n--- Feed: %s ---\n", title)

	if description := StripTags(f.Description); description != "" {
		fmt.Fprintf(&b, "Description: %s\n", description)
	}

	if len(f.Entries) == 0 {
		b.WriteString("\nNo entries found in this feed.\n")
		b.WriteString(separator)
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString("\n--- Entries ---\n")
	for _, entry := range f.Entries {
		r.writeEntry(&b, entry)
	}

	b.WriteString(separator)
	b.WriteByte('\n')
	return b.String()
}

func (r *Renderer) writeEntry(b *strings.Builder, entry feed.Entry) {
	title := entry.Title
	if title == "" {
		title = "No Title"
	}
	link := entry.Link
	if link == "" {
		link = "No Link"
	}

	fmt.Fprintf(b, "\n* Title: %s\n", title)
	fmt.Fprintf(b, "  Link: %s\n", link)

	if description := StripTags(entry.Description); description != "" {
		b.WriteString(Wrap(description, r.wrapWidth, "  Desc: ", "        "))
		b.WriteByte('\n')
	} else {
		b.WriteString("  Desc: Not Available\n")
	}
}
