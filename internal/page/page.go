// Package page holds the parsed DOM tree that the role matchers scan.
package page

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is an immutable parsed document. It is built once per fetch and
// discarded once selectors have been extracted.
type Page struct {
	doc *goquery.Document
}

// Parse builds a Page from rendered HTML
func Parse(content string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Title returns the trimmed text of the first <title> element
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// FirstByTag returns the first element with the given tag in document order
func (p *Page) FirstByTag(tag string) *Element {
	return p.first(tag, func(*Element) bool { return true })
}

// FirstByClass returns the first element (optionally restricted to tag)
// whose class attribute matches pattern. An empty tag matches any element.
func (p *Page) FirstByClass(tag string, pattern *regexp.Regexp) *Element {
	return p.first(tag, func(el *Element) bool {
		return el.ClassMatches(pattern)
	})
}

// FirstByAttr returns the first element (optionally restricted to tag)
// whose attribute key is present and matches pattern.
func (p *Page) FirstByAttr(tag, key string, pattern *regexp.Regexp) *Element {
	return p.first(tag, func(el *Element) bool {
		v, ok := el.Attr(key)
		return ok && pattern.MatchString(v)
	})
}

func (p *Page) first(tag string, keep func(*Element) bool) *Element {
	sel := tag
	if sel == "" {
		sel = "*"
	}

	var found *Element
	p.doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		el := wrap(s.Get(0))
		if el != nil && keep(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// Element is an element node of a Page
type Element struct {
	node *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// Node returns the underlying html node
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the lower-cased tag name
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of an attribute and whether it is present
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the id attribute, empty when absent
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Classes returns the class tokens. Only HTML space characters separate
// tokens, so a no-break space stays part of its token.
func (e *Element) Classes() []string {
	class, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.FieldsFunc(class, isHTMLSpace)
}

func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// ClassMatches reports whether any single class token matches pattern,
// falling back to the space-joined class list. Elements without a class
// attribute never match.
func (e *Element) ClassMatches(pattern *regexp.Regexp) bool {
	if _, ok := e.Attr("class"); !ok {
		return false
	}
	classes := e.Classes()
	for _, c := range classes {
		if pattern.MatchString(c) {
			return true
		}
	}
	return pattern.MatchString(strings.Join(classes, " "))
}

// Text returns the whitespace-collapsed text content
func (e *Element) Text() string {
	return strings.Join(strings.Fields(goquery.NewDocumentFromNode(e.node).Text()), " ")
}

// Parent returns the parent element, or nil when the parent is the
// document root.
func (e *Element) Parent() *Element {
	return wrap(e.node.Parent)
}

// Children returns the child elements in document order
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if el := wrap(c); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// PrecedingSiblings returns the number of earlier siblings sharing this
// element's tag name.
func (e *Element) PrecedingSiblings() int {
	n := 0
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && s.Data == e.node.Data {
			n++
		}
	}
	return n
}
