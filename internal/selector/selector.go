// Package selector derives CSS selectors for matched page elements.
package selector

import (
	"fmt"
	"strings"

	"github.com/law-makers/selectorfinder/internal/page"
)

// Separator joins the segments of a structural path
const Separator = " > "

// Synthesize returns a CSS selector addressing el. The id wins over the
// class list, which wins over a structural path built from el's ancestors.
// The first qualifying class is used even if siblings share it.
func Synthesize(el *page.Element) (string, bool) {
	if el == nil {
		return "", false
	}

	if id := el.ID(); id != "" {
		return "#" + id, true
	}

	for _, class := range el.Classes() {
		if strings.TrimSpace(class) != "" {
			return "." + class, true
		}
	}

	path := Path(el)
	if path == "" {
		return "", false
	}
	return path, true
}

// Path builds the structural fallback: one segment per ancestor of el,
// outermost first, rooted at the nearest ancestor carrying an id or at the
// highest ancestor below the document root.
func Path(el *page.Element) string {
	var segments []string
	for parent := el.Parent(); parent != nil; parent = parent.Parent() {
		if id := parent.ID(); id != "" {
			segments = append(segments, "#"+id)
			break
		}
		segments = append(segments, fmt.Sprintf("%s:nth-child(%d)", parent.Tag(), parent.PrecedingSiblings()+1))
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, Separator)
}
