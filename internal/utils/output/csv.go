package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/law-makers/selectorfinder/pkg/models"
)

// SaveCSV writes one row per role to a CSV file. Returns an error on failure.
func SaveCSV(report *models.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"domain", "role", "label", "selector", "found"}); err != nil {
		return err
	}
	for _, role := range models.Roles {
		selector, ok := report.Selectors.Lookup(role)
		row := []string{report.Domain, string(role), role.Label(), selector, strconv.FormatBool(ok)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
