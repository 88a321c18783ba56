package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/law-makers/selectorfinder/pkg/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		AnalysisID: "abc123",
		URL:        "https://shop.example/widget",
		Domain:     "shop.example",
		Engine:     "static",
		Title:      "Widget | Shop",
		Selectors: models.SelectorResult{
			models.RoleProductName: ".title",
			models.RolePrice:       ".price-tag",
			models.RoleQuantity:    "html:nth-child(1) > body:nth-child(1)",
		},
	}
}

func TestSave_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := Save(sampleReport(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got models.Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Selectors[models.RolePrice] != ".price-tag" || got.Domain != "shop.example" {
		t.Errorf("unexpected report: %+v", got)
	}
	if _, ok := got.Selectors[models.RoleSKU]; ok {
		t.Error("expected absent role to stay absent")
	}
}

func TestSave_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := Save(sampleReport(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}

	if len(rows) != len(models.Roles)+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(models.Roles), len(rows))
	}
	if rows[1][1] != "product_name" || rows[1][3] != ".title" || rows[1][4] != "true" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[3][1] != "sku" || rows[3][3] != "" || rows[3][4] != "false" {
		t.Errorf("unexpected sku row %v", rows[3])
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport())

	for _, want := range []string{
		"# Selectors for shop.example",
		"- Title: Widget \\| Shop",
		"| Product Name | `.title` |",
		"| SKU | _Not found_ |",
		"| Quantity Input | `html:nth-child(1) > body:nth-child(1)` |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected markdown to contain %q\n%s", want, md)
		}
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	err := Save(sampleReport(), filepath.Join(t.TempDir(), "report.html"))
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"product_name": ".title"`) {
		t.Errorf("unexpected JSON %s", buf.String())
	}
	for _, role := range []models.Role{models.RoleSKU, models.RoleQuantityUp, models.RoleQuantityDown, models.RoleAddToCart} {
		if want := `"` + string(role) + `": null`; !strings.Contains(buf.String(), want) {
			t.Errorf("expected %s in JSON %s", want, buf.String())
		}
	}
}

func TestMarkdown_FinalURL(t *testing.T) {
	r := sampleReport()
	if strings.Contains(Markdown(r), "Final URL") {
		t.Error("expected no final URL line without a redirect")
	}

	r.FinalURL = "https://shop.example/widget-2"
	if md := Markdown(r); !strings.Contains(md, "- Final URL: https://shop.example/widget-2") {
		t.Errorf("expected final URL line\n%s", md)
	}
}
