package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/law-makers/selectorfinder/pkg/models"
)

// NotFound is shown for roles without a selector
const NotFound = "Not found"

// Section is one labeled column of the result grid
type Section struct {
	Title string
	Roles []models.Role
}

// Sections is the grid layout: product details on the left, purchase
// controls on the right.
var Sections = []Section{
	{
		Title: "Product Details",
		Roles: []models.Role{models.RoleProductName, models.RolePrice, models.RoleSKU},
	},
	{
		Title: "Purchase Controls",
		Roles: []models.Role{models.RoleQuantity, models.RoleQuantityUp, models.RoleQuantityDown, models.RoleAddToCart},
	},
}

const columnGap = 4

type cell struct {
	label, value string
	found        bool
}

func (c cell) width() int {
	return len(c.label) + 2 + len(c.value)
}

// RenderReport writes the two-column selector grid followed by the domain
func RenderReport(w io.Writer, r *models.Report, pal Palette) {
	left := cells(r.Selectors, Sections[0].Roles)
	right := cells(r.Selectors, Sections[1].Roles)

	leftWidth := len(Sections[0].Title)
	for _, c := range left {
		leftWidth = max(leftWidth, c.width())
	}
	leftWidth += columnGap

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s%s\n",
		pal.Heading(Sections[0].Title),
		strings.Repeat(" ", leftWidth-len(Sections[0].Title)),
		pal.Heading(Sections[1].Title))

	for i := range max(len(left), len(right)) {
		var line strings.Builder
		if i < len(left) {
			line.WriteString(left[i].render(pal))
			line.WriteString(strings.Repeat(" ", leftWidth-left[i].width()))
		} else {
			line.WriteString(strings.Repeat(" ", leftWidth))
		}
		if i < len(right) {
			line.WriteString(right[i].render(pal))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Domain analyzed: %s\n", pal.Bold(r.Domain))
}

// RenderExplain writes, per role, the step that produced the selector
func RenderExplain(w io.Writer, matches []models.Match, pal Palette) {
	if len(matches) == 0 {
		return
	}

	width := 0
	for _, m := range matches {
		width = max(width, len(m.Role.Label()))
	}

	fmt.Fprintf(w, "\n%s\n", pal.Heading("Why these selectors"))
	for _, m := range matches {
		label := m.Role.Label() + strings.Repeat(" ", width-len(m.Role.Label()))
		if m.Selector == "" {
			fmt.Fprintf(w, "  %s  %s\n", label, pal.Dim("no step matched"))
			continue
		}
		fmt.Fprintf(w, "  %s  %s %s", label, pal.Success(m.Selector), pal.Dim("<"+m.Tag+"> via "+m.Step))
		if m.Text != "" {
			fmt.Fprintf(w, " %q", m.Text)
		}
		fmt.Fprintln(w)
	}
}

func cells(result models.SelectorResult, roles []models.Role) []cell {
	out := make([]cell, 0, len(roles))
	for _, role := range roles {
		c := cell{label: role.Label(), value: NotFound}
		if s, ok := result.Lookup(role); ok {
			c.value, c.found = s, true
		}
		out = append(out, c)
	}
	return out
}

func (c cell) render(pal Palette) string {
	value := pal.Warn(c.value)
	if c.found {
		value = pal.Success(c.value)
	}
	return pal.Dim(c.label+":") + " " + value
}
