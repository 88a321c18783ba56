package matcher

import (
	"testing"

	"github.com/law-makers/selectorfinder/internal/page"
	"github.com/law-makers/selectorfinder/pkg/models"
)

func mustParse(t *testing.T, html string) *page.Page {
	t.Helper()
	p, err := page.Parse(html)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return p
}

func TestFindAll_WidgetPage(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head><title>Widget</title></head>
<body><h1 class="title">Widget</h1><span class="price-tag">$10</span><input name="qty_input"><button class="add-to-cart-btn">Buy</button></body>
</html>`

	got := FindAll(mustParse(t, html))

	want := map[models.Role]string{
		models.RoleProductName: ".title",
		models.RolePrice:       ".price-tag",
		models.RoleQuantity:    "html:nth-child(1) > body:nth-child(1)",
		models.RoleAddToCart:   ".add-to-cart-btn",
	}
	for role, sel := range want {
		if s, ok := got.Lookup(role); !ok || s != sel {
			t.Errorf("%s: expected %q, got %q (found=%v)", role, sel, s, ok)
		}
	}

	for _, role := range []models.Role{models.RoleSKU, models.RoleQuantityUp, models.RoleQuantityDown} {
		if s, ok := got.Lookup(role); ok {
			t.Errorf("%s: expected not found, got %q", role, s)
		}
	}

	if got.Found() != 4 {
		t.Errorf("expected 4 roles found, got %d", got.Found())
	}
}

func TestFindAll_IrrelevantPage(t *testing.T) {
	for _, html := range []string{"", `<div><p>About us</p><a href="/contact">Contact</a></div>`} {
		got := FindAll(mustParse(t, html))
		if got.Found() != 0 {
			t.Errorf("expected no roles for %q, got %v", html, got)
		}
	}
}

func TestFindAll_NilPage(t *testing.T) {
	if got := FindAll(nil); got.Found() != 0 {
		t.Errorf("expected no roles for nil page, got %v", got)
	}
}

func TestProductName_StepOrderBeatsDocumentOrder(t *testing.T) {
	html := `<div class="product-title" id="early">Early</div><section><h1 id="late">Late</h1></section>`

	s, ok := ProductName().Selector(mustParse(t, html))
	if !ok || s != "#late" {
		t.Errorf("expected h1 to win over earlier product-title, got %q", s)
	}
}

func TestProductName_DocumentOrderWithinStep(t *testing.T) {
	html := `<div class="ProductName-main">A</div><div class="product-title">B</div><div class="product-name">C</div>`

	s, ok := ProductName().Selector(mustParse(t, html))
	if !ok || s != ".product-title" {
		t.Errorf("expected product.*title step to win, got %q", s)
	}

	html = `<div class="ProductName-main">A</div><div class="product-name">C</div>`
	s, ok = ProductName().Selector(mustParse(t, html))
	if !ok || s != ".ProductName-main" {
		t.Errorf("expected first product.*name element, got %q", s)
	}
}

func TestPrice_FallsBackToAmount(t *testing.T) {
	html := `<span class="total-amount">9.99</span>`
	s, ok := Price().Selector(mustParse(t, html))
	if !ok || s != ".total-amount" {
		t.Errorf("expected .total-amount, got %q", s)
	}
}

func TestClassMatching_JoinedClassList(t *testing.T) {
	// No single token matches product.*title but the joined list does
	html := `<div class="product card-title">Shoe</div>`
	s, ok := ProductName().Selector(mustParse(t, html))
	if !ok || s != ".product" {
		t.Errorf("expected .product, got %q", s)
	}
}

func TestClassMatching_CaseInsensitive(t *testing.T) {
	html := `<p class="ProductCode">A-1</p>`
	s, ok := SKU().Selector(mustParse(t, html))
	if !ok || s != ".ProductCode" {
		t.Errorf("expected .ProductCode, got %q", s)
	}
}

func TestSKU_Steps(t *testing.T) {
	html := `<span class="item-number">1</span><span class="product-code">2</span><span class="sku">3</span>`
	s, ok := SKU().Selector(mustParse(t, html))
	if !ok || s != ".sku" {
		t.Errorf("expected .sku, got %q", s)
	}
}

func TestQuantity_InputOnly(t *testing.T) {
	html := `<select name="quantity"></select><input id="q2" name="QTY"><input id="q1" name="item-quantity">`
	s, ok := Quantity().Selector(mustParse(t, html))
	if !ok || s != "#q1" {
		t.Errorf("expected #q1, got %q", s)
	}
}

func TestQuantityButtons(t *testing.T) {
	html := `<div class="up">not a button</div>
<button class="qty-increase-up" id="inc">+</button>
<button class="stepper down" id="dec">-</button>`
	p := mustParse(t, html)

	if s, ok := QuantityButton(models.RoleQuantityUp, "up").Selector(p); !ok || s != "#inc" {
		t.Errorf("up: expected #inc, got %q", s)
	}
	if s, ok := QuantityButton(models.RoleQuantityDown, "down").Selector(p); !ok || s != "#dec" {
		t.Errorf("down: expected #dec, got %q", s)
	}
}

func TestAddToCart_ButtonBeforeLink(t *testing.T) {
	html := `<a class="add-to-cart-link" href="#">Add</a><button class="btn-add-cart">Add</button>`
	s, ok := AddToCart().Selector(mustParse(t, html))
	if !ok || s != ".btn-add-cart" {
		t.Errorf("expected button to win, got %q", s)
	}
}

func TestAddToCart_PatternBeforeTag(t *testing.T) {
	html := `<button class="buy-now">Buy</button><a class="AddToCart" href="#">Add</a>`
	s, ok := AddToCart().Selector(mustParse(t, html))
	if !ok || s != ".AddToCart" {
		t.Errorf("expected add.*cart link to win over buy.*now button, got %q", s)
	}

	html = `<div class="purchase">x</div><a class="purchase-link" href="#">Purchase</a>`
	s, ok = AddToCart().Selector(mustParse(t, html))
	if !ok || s != ".purchase-link" {
		t.Errorf("expected the purchase link, got %q", s)
	}
}

func TestExplain(t *testing.T) {
	html := `<h1>  Super   Widget </h1><span class="price">$10</span>`
	matches := Explain(mustParse(t, html))

	if len(matches) != len(models.Roles) {
		t.Fatalf("expected %d matches, got %d", len(models.Roles), len(matches))
	}

	name := matches[0]
	if name.Role != models.RoleProductName || name.Step != "<h1>" || name.Text != "Super Widget" || name.Tag != "h1" {
		t.Errorf("unexpected product name match: %+v", name)
	}
	if matches[1].Step != "class ~ price" || matches[1].Selector != ".price" {
		t.Errorf("unexpected price match: %+v", matches[1])
	}
	if matches[2].Selector != "" || matches[2].Step != "" {
		t.Errorf("expected empty sku match, got %+v", matches[2])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("expected abc..., got %q", got)
	}
	if got := truncate("abc", 3); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}
