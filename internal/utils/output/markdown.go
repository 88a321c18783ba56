package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/law-makers/selectorfinder/pkg/models"
)

// SaveMarkdown writes the report as a Markdown table to path
func SaveMarkdown(report *models.Report, path string) error {
	return os.WriteFile(path, []byte(Markdown(report)), 0644)
}

// Markdown renders the report as a Markdown document
func Markdown(report *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Selectors for %s\n\n", report.Domain)
	fmt.Fprintf(&b, "- URL: %s\n", report.URL)
	if report.FinalURL != "" && report.FinalURL != report.URL {
		fmt.Fprintf(&b, "- Final URL: %s\n", report.FinalURL)
	}
	if report.Title != "" {
		fmt.Fprintf(&b, "- Title: %s\n", escapeCell(report.Title))
	}
	fmt.Fprintf(&b, "- Engine: %s\n", report.Engine)
	if !report.FetchedAt.IsZero() {
		fmt.Fprintf(&b, "- Fetched: %s\n", report.FetchedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString("\n| Element | Selector |\n|---|---|\n")

	for _, role := range models.Roles {
		cell := "_Not found_"
		if s, ok := report.Selectors.Lookup(role); ok {
			cell = "`" + escapeCell(s) + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", role.Label(), cell)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
