package feed

import (
	"errors"
	"testing"
)

func TestGofeedParserRSS2(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Test Item</title>
      <link>https://example.com/item1</link>
      <description>Item Description</description>
    </item>
  </channel>
</rss>`

	parser := NewGofeedParser()
	result, err := parser.Run([]byte(rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Title != "Test Feed" {
		t.Errorf("Expected title 'Test Feed', got: %q", result.Title)
	}
	if result.Link != "https://example.com" {
		t.Errorf("Expected link 'https://example.com', got: %q", result.Link)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(result.Entries))
	}
	if result.Entries[0].Description != "Item Description" {
		t.Errorf("Expected description 'Item Description', got: %q", result.Entries[0].Description)
	}
}

func TestGofeedParserAtom(t *testing.T) {
	atomData := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Test Atom Feed</title>
  <subtitle>Atom subtitle</subtitle>
  <link rel="alternate" href="https://example.com"/>
  <entry>
    <title>Test Entry</title>
    <link rel="alternate" href="https://example.com/entry1"/>
    <content type="html">Entry content</content>
  </entry>
</feed>`

	parser := NewGofeedParser()
	result, err := parser.Run([]byte(atomData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Title != "Test Atom Feed" {
		t.Errorf("Expected title 'Test Atom Feed', got: %q", result.Title)
	}
	if result.Description != "Atom subtitle" {
		t.Errorf("Expected description 'Atom subtitle', got: %q", result.Description)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(result.Entries))
	}
	if result.Entries[0].Link != "https://example.com/entry1" {
		t.Errorf("Expected entry link 'https://example.com/entry1', got: %q", result.Entries[0].Link)
	}
	if result.Entries[0].Description != "Entry content" {
		t.Errorf("Expected content fallback, got: %q", result.Entries[0].Description)
	}
}

func TestGofeedParserAppliesEntryFilter(t *testing.T) {
	rssData := `<rss version="2.0"><channel>
  <title>Feed</title>
  <item><description>Only a description</description></item>
  <item><title>Kept</title><link>https://example.com/kept</link></item>
</channel></rss>`

	parser := NewGofeedParser()
	result, err := parser.Run([]byte(rssData))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Expected 1 entry after filtering, got: %d", len(result.Entries))
	}
	if result.Entries[0].Title != "Kept" {
		t.Errorf("Expected kept entry 'Kept', got: %q", result.Entries[0].Title)
	}
}

func TestGofeedParserUnknownFormat(t *testing.T) {
	parser := NewGofeedParser()
	_, err := parser.Run([]byte(`<foo><bar/></foo>`))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got: %v", err)
	}
	if parseErr.Kind != ErrUnknownDialect {
		t.Errorf("Expected kind %q, got: %q", ErrUnknownDialect, parseErr.Kind)
	}
}
