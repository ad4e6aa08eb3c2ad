// Package page queries rendered HTML documents and provides Gomega matchers for
// the links and locations acceptance tests care about.
package page

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
	"io"
	"strings"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse parses the HTML read from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "[page] - failed to parse document")
	}
	return &Document{root: root}, nil
}

// ParseString parses the given HTML.
func ParseString(s string) (*Document, error) { return Parse(strings.NewReader(s)) }

// Find returns every element in document order that matches sel.
func (d *Document) Find(sel Selector) []*Element {
	var found []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if el := (&Element{node: n}); sel(el) {
				found = append(found, el)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

// Has returns true if any element matches sel.
func (d *Document) Has(sel Selector) bool { return len(d.Find(sel)) > 0 }

// Links returns every anchor in the document.
func (d *Document) Links() []*Element { return d.Find(Tag("a")) }

// Hrefs returns the href of every anchor that has one.
func (d *Document) Hrefs() []string {
	var hrefs []string
	for _, l := range d.Links() {
		if href, ok := l.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs
}

// Element is a single element of a Document.
type Element struct {
	node *html.Node
}

// Tag returns the lower-case tag name of the element.
func (e *Element) Tag() string { return e.node.Data }

// Attr returns the value of the attribute key and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.TrimSpace(b.String())
}
