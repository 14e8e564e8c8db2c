package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Atom namespace URI per RFC 4287.
const atomNamespace = "http://www.w3.org/2005/Atom"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// XMLParser is the built-in normalizer. It parses feed documents into a
// generic element tree, detects the dialect from the root element, and
// reconciles the RSS 2.0 and Atom layouts into a single NormalizedFeed.
type XMLParser struct{}

func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

func (p *XMLParser) Run(data []byte) (*NormalizedFeed, error) {
	decoded, perr := decodeContent(data)
	if perr != nil {
		return nil, perr
	}

	root, perr := parseTree(decoded)
	if perr != nil {
		return nil, perr
	}

	dialect, ok := detectDialect(root)
	if !ok {
		return nil, &ParseError{
			Kind:   ErrUnknownDialect,
			Detail: fmt.Sprintf("root element <%s> is neither RSS nor Atom", root.XMLName.Local),
		}
	}

	if dialect == DialectAtom {
		return p.parseAtom(root), nil
	}
	return p.parseRSS(root)
}

// decodeContent trims surrounding whitespace and a byte-order marker, then
// ensures the document is valid UTF-8. Non-UTF-8 input is transcoded with
// the detected source encoding; input that survives neither path is an
// encoding error, never silently corrupted text.
func decodeContent(data []byte) ([]byte, *ParseError) {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimSpace(data)

	if utf8.Valid(data) {
		return data, nil
	}

	enc, name, _ := charset.DetermineEncoding(data, "")
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil || !utf8.Valid(decoded) {
		return nil, &ParseError{
			Kind:   ErrEncoding,
			Detail: fmt.Sprintf("content is not valid UTF-8 and cannot be decoded as %s", name),
			Err:    err,
		}
	}
	return decoded, nil
}

// parseTree parses the document into a generic element tree. Any structural
// XML failure is fatal for this document.
func parseTree(data []byte) (*node, *ParseError) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Content is already UTF-8 at this point; accept whatever encoding the
	// XML declaration claims instead of failing on the label.
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var root node
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Kind: ErrMalformed, Detail: err.Error(), Err: err}
	}
	return &root, nil
}

// detectDialect inspects the root element's qualified name. Atom feeds are
// recognized by the Atom namespace or a root name ending in "feed"; RSS 2.0
// by a root name ending in "rss".
func detectDialect(root *node) (Dialect, bool) {
	switch {
	case root.XMLName.Space == atomNamespace || strings.HasSuffix(root.XMLName.Local, "feed"):
		return DialectAtom, true
	case strings.HasSuffix(root.XMLName.Local, "rss"):
		return DialectRSS2, true
	}
	return "", false
}

func (p *XMLParser) parseAtom(root *node) *NormalizedFeed {
	// Core Atom elements share the root's namespace; extension elements in
	// other namespaces are ignored.
	ns := root.XMLName.Space

	out := &NormalizedFeed{
		Title:       root.childText(ns, "title"),
		Description: root.childText(ns, "subtitle"),
		Link:        selectLink(root.children(ns, "link")),
	}

	for _, entry := range root.children(ns, "entry") {
		e := Entry{
			Title:       entry.childText(ns, "title"),
			Link:        selectLink(entry.children(ns, "link")),
			Description: entry.childText(ns, "summary"),
		}
		// summary is preferred; content is the fallback only when summary
		// is missing or empty
		if e.Description == "" {
			e.Description = entry.childText(ns, "content")
		}
		if !e.identified() {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

func (p *XMLParser) parseRSS(root *node) (*NormalizedFeed, error) {
	ns := root.XMLName.Space

	channel := root.child(ns, "channel")
	if channel == nil {
		return nil, &ParseError{
			Kind:   ErrMissingChannel,
			Detail: "RSS document has no <channel> element",
		}
	}

	out := &NormalizedFeed{
		Title:       channel.childText(ns, "title"),
		Description: channel.childText(ns, "description"),
		Link:        channel.childText(ns, "link"),
	}

	for _, item := range channel.children(ns, "item") {
		e := Entry{
			Title:       item.childText(ns, "title"),
			Link:        item.childText(ns, "link"),
			Description: item.childText(ns, "description"),
		}
		if !e.identified() {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}

// selectLink picks the primary URL from a set of <link> elements. The first
// candidate marked rel="alternate" wins; failing that, the first candidate
// with no rel attribute at all; failing that, the first candidate carrying
// any value. This precedence is a documented policy choice, not a strict
// standard requirement.
func selectLink(links []*node) string {
	for _, l := range links {
		if l.attr("rel") == "alternate" {
			if v := linkValue(l); v != "" {
				return v
			}
		}
	}
	for _, l := range links {
		if !l.hasAttr("rel") {
			if v := linkValue(l); v != "" {
				return v
			}
		}
	}
	for _, l := range links {
		if v := linkValue(l); v != "" {
			return v
		}
	}
	return ""
}

// linkValue resolves a single link element: an href attribute takes
// precedence over text content (Atom convention); RSS links are plain text.
func linkValue(l *node) string {
	if href := l.attr("href"); href != "" {
		return href
	}
	return l.text()
}
