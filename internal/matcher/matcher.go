// Package matcher guesses which page element fulfils each product-page role.
//
// Every role has an ordered list of steps. Steps are tried in order and the
// first step that finds any element wins, even if a later step would have
// found an element earlier in the document. Within a step, document order
// decides. There is no scoring across candidates.
package matcher

import (
	"regexp"

	"github.com/law-makers/selectorfinder/internal/page"
	"github.com/law-makers/selectorfinder/internal/selector"
	"github.com/law-makers/selectorfinder/pkg/models"
)

// maxTextLen caps the element text carried in explain output
const maxTextLen = 80

// Step is one element predicate of a matcher
type Step struct {
	Label string
	Find  func(p *page.Page) *page.Element
}

// Matcher resolves a single role
type Matcher struct {
	Role  models.Role
	Steps []Step
}

// Match runs the steps in order and returns the first element found along
// with the label of the step that found it.
func (m Matcher) Match(p *page.Page) (*page.Element, string) {
	if p == nil {
		return nil, ""
	}
	for _, step := range m.Steps {
		if el := step.Find(p); el != nil {
			return el, step.Label
		}
	}
	return nil, ""
}

// Selector returns the selector for the element matched on p
func (m Matcher) Selector(p *page.Page) (string, bool) {
	el, _ := m.Match(p)
	return selector.Synthesize(el)
}

func tag(name string) Step {
	return Step{
		Label: "<" + name + ">",
		Find:  func(p *page.Page) *page.Element { return p.FirstByTag(name) },
	}
}

func class(tagName string, label string, re *regexp.Regexp) Step {
	if tagName != "" {
		label = tagName + " class ~ " + label
	} else {
		label = "class ~ " + label
	}
	return Step{
		Label: label,
		Find:  func(p *page.Page) *page.Element { return p.FirstByClass(tagName, re) },
	}
}

// classIn tries each tag in order for the same pattern
func classIn(tags []string, label string, re *regexp.Regexp) Step {
	return Step{
		Label: "class ~ " + label,
		Find: func(p *page.Page) *page.Element {
			for _, t := range tags {
				if el := p.FirstByClass(t, re); el != nil {
					return el
				}
			}
			return nil
		},
	}
}

func attr(tagName, key, label string, re *regexp.Regexp) Step {
	return Step{
		Label: tagName + " " + key + " ~ " + label,
		Find:  func(p *page.Page) *page.Element { return p.FirstByAttr(tagName, key, re) },
	}
}

// ProductName finds the product title
func ProductName() Matcher {
	return Matcher{
		Role: models.RoleProductName,
		Steps: []Step{
			tag("h1"),
			class("", "product.*title", Eventually("product", "title")),
			class("", "product.*name", Eventually("product", "name")),
		},
	}
}

// Price finds the displayed price
func Price() Matcher {
	return Matcher{
		Role: models.RolePrice,
		Steps: []Step{
			class("", "price", Word("price")),
			class("", "amount", Word("amount")),
		},
	}
}

// SKU finds the product code
func SKU() Matcher {
	return Matcher{
		Role: models.RoleSKU,
		Steps: []Step{
			class("", "sku", Word("sku")),
			class("", "product.*code", Eventually("product", "code")),
			class("", "item.*number", Eventually("item", "number")),
		},
	}
}

// Quantity finds the quantity input field
func Quantity() Matcher {
	return Matcher{
		Role: models.RoleQuantity,
		Steps: []Step{
			attr("input", "name", "quantity", Word("quantity")),
			attr("input", "name", "qty", Word("qty")),
		},
	}
}

// QuantityButton finds the quantity stepper button for direction "up" or "down"
func QuantityButton(role models.Role, direction string) Matcher {
	return Matcher{
		Role: role,
		Steps: []Step{
			class("button", direction, Word(direction)),
			class("button", "quantity.*"+direction, Eventually("quantity", direction)),
			class("button", "qty.*"+direction, Eventually("qty", direction)),
		},
	}
}

// AddToCart finds the purchase button, preferring buttons over links
func AddToCart() Matcher {
	tags := []string{"button", "a"}
	return Matcher{
		Role: models.RoleAddToCart,
		Steps: []Step{
			classIn(tags, "add.*cart", Eventually("add", "cart")),
			classIn(tags, "buy.*now", Eventually("buy", "now")),
			classIn(tags, "purchase", Word("purchase")),
		},
	}
}

// All returns the matcher for every role, in display order
func All() []Matcher {
	return []Matcher{
		ProductName(),
		Price(),
		SKU(),
		Quantity(),
		QuantityButton(models.RoleQuantityUp, "up"),
		QuantityButton(models.RoleQuantityDown, "down"),
		AddToCart(),
	}
}

// FindAll runs every matcher against p. Roles without a match are left out
// of the result.
func FindAll(p *page.Page) models.SelectorResult {
	result := make(models.SelectorResult, len(models.Roles))
	for _, m := range All() {
		if s, ok := m.Selector(p); ok {
			result[m.Role] = s
		}
	}
	return result
}

// Explain runs every matcher and reports, per role, the step that matched
// and a short excerpt of the element's text.
func Explain(p *page.Page) []models.Match {
	matchers := All()
	out := make([]models.Match, 0, len(matchers))
	for _, m := range matchers {
		match := models.Match{Role: m.Role}
		el, step := m.Match(p)
		if s, ok := selector.Synthesize(el); ok {
			match.Selector = s
			match.Step = step
			match.Tag = el.Tag()
			match.Text = truncate(el.Text(), maxTextLen)
		}
		out = append(out, match)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
