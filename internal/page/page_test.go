package page

import (
	"regexp"
	"testing"
)

const fixture = `<html><head><title> Widget Shop </title></head><body>
<div class="product  card"><h1>  Blue
  Widget </h1></div>
<div id="second"><p>one</p><span>x</span><p class="">two</p></div>
<input name="Quantity">
</body></html>`

func mustParse(t *testing.T, s string) *Page {
	t.Helper()
	p, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return p
}

func TestPage_Title(t *testing.T) {
	if got := mustParse(t, fixture).Title(); got != "Widget Shop" {
		t.Errorf("expected 'Widget Shop', got %q", got)
	}
}

func TestPage_FirstByTag(t *testing.T) {
	p := mustParse(t, fixture)

	h1 := p.FirstByTag("h1")
	if h1 == nil || h1.Text() != "Blue Widget" {
		t.Fatalf("expected h1 with collapsed text, got %v", h1)
	}
	if p.FirstByTag("table") != nil {
		t.Error("expected nil for missing tag")
	}
}

func TestElement_ClassMatches(t *testing.T) {
	p := mustParse(t, `<div class="product card"></div><div class=""></div><div></div>`)
	divs := p.FirstByTag("body").Children()

	tests := []struct {
		idx     int
		pattern string
		want    bool
	}{
		{0, "card", true},
		{0, "product card", true},
		{0, "product.*card", true},
		{0, "^card$", true},
		{1, ".*", true},
		{2, ".*", false},
	}
	for _, tt := range tests {
		if got := divs[tt.idx].ClassMatches(regexp.MustCompile(tt.pattern)); got != tt.want {
			t.Errorf("div %d ~ %q = %v, want %v", tt.idx, tt.pattern, got, tt.want)
		}
	}
}

func TestPage_FirstByAttr(t *testing.T) {
	p := mustParse(t, fixture)

	if el := p.FirstByAttr("input", "name", regexp.MustCompile(`(?i)quantity`)); el == nil {
		t.Error("expected input matched case-insensitively")
	}
	if el := p.FirstByAttr("input", "id", regexp.MustCompile(`.*`)); el != nil {
		t.Error("expected missing attribute not to match")
	}
}

func TestElement_Tree(t *testing.T) {
	p := mustParse(t, fixture)

	html := p.FirstByTag("html")
	if html.Parent() != nil {
		t.Error("expected document element to have no parent element")
	}

	second := p.FirstByClass("p", regexp.MustCompile(`.*`))
	if second == nil || second.Text() != "two" {
		t.Fatalf("expected second paragraph, got %v", second)
	}
	if n := second.PrecedingSiblings(); n != 1 {
		t.Errorf("expected 1 preceding <p>, got %d", n)
	}
	if second.Parent().ID() != "second" {
		t.Errorf("expected parent #second, got %q", second.Parent().ID())
	}
	if got := len(second.Parent().Children()); got != 3 {
		t.Errorf("expected 3 children, got %d", got)
	}
	if classes := second.Classes(); len(classes) != 0 {
		t.Errorf("expected no class tokens, got %v", classes)
	}
}

func TestElement_ClassesSplitOnHTMLSpaceOnly(t *testing.T) {
	p := mustParse(t, "<div class=\"a\u00a0b\tc\nd\"></div>")

	div := p.FirstByTag("div")
	if div == nil {
		t.Fatal("expected div")
	}
	got := div.Classes()
	want := []string{"a\u00a0b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

