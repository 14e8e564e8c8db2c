package render

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags reduces an HTML fragment to its text content: tags are dropped,
// entities are decoded, and runs of whitespace collapse to single spaces.
// Plain text passes through with the same whitespace normalization.
func StripTags(s string) string {
	if s == "" {
		return ""
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			// io.EOF terminates the fragment; anything else still leaves
			// the text collected so far usable for display
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(tok.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

// Wrap greedily wraps text at the given column width. The first line is
// prefixed with initialIndent, continuation lines with subsequentIndent.
func Wrap(s string, width int, initialIndent, subsequentIndent string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return initialIndent
	}

	var b strings.Builder
	line := initialIndent + words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			b.WriteString(line)
			b.WriteByte('\n')
			line = subsequentIndent + word
			continue
		}
		line += " " + word
	}
	b.WriteString(line)

	return b.String()
}
