package feed

import (
	"encoding/xml"
	"strings"
)

// node is a generic XML element. encoding/xml resolves namespace prefixes,
// so XMLName.Space always carries the full namespace URI.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// child returns the first child element matching the namespace and local
// name, or nil.
func (n *node) child(space, local string) *node {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == local && c.XMLName.Space == space {
			return c
		}
	}
	return nil
}

// children returns all child elements matching the namespace and local name,
// in document order.
func (n *node) children(space, local string) []*node {
	var out []*node
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == local && c.XMLName.Space == space {
			out = append(out, c)
		}
	}
	return out
}

// text returns the element's own character data with surrounding whitespace
// removed. Whitespace-only content counts as absent.
func (n *node) text() string {
	return strings.TrimSpace(n.Text)
}

// childText returns the trimmed text of the first matching child element, or
// the empty string when the child is missing or empty.
func (n *node) childText(space, local string) string {
	if c := n.child(space, local); c != nil {
		return c.text()
	}
	return ""
}

// attr returns the value of the named unqualified attribute, trimmed.
func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

// hasAttr reports whether the named attribute is present at all, regardless
// of its value.
func (n *node) hasAttr(name string) bool {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}
