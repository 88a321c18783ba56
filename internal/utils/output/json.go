// Package output exports analysis reports to files.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/law-makers/selectorfinder/pkg/models"
)

// Save writes report to path in the format named by its extension
func Save(report *models.Report, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return SaveJSON(report, path)
	case ".csv":
		return SaveCSV(report, path)
	case ".md", ".markdown":
		return SaveMarkdown(report, path)
	default:
		return fmt.Errorf("unsupported output format %q (use .json, .csv or .md)", ext)
	}
}

// SaveJSON writes an indented JSON export of the report to path.
func SaveJSON(report *models.Report, path string) error {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(content, '\n'), 0644)
}

// WriteJSON encodes report as indented JSON on w
func WriteJSON(w io.Writer, report *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
