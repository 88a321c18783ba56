package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSelectorResult_MarshalJSON(t *testing.T) {
	r := SelectorResult{RoleProductName: ".title", RoleAddToCart: "#buy"}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"product_name":".title","price":null,"sku":null,"quantity":null,"quantity_up":null,"quantity_down":null,"add_to_cart":"#buy"}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestSelectorResult_EmptyWritesAllRoles(t *testing.T) {
	data, err := json.Marshal(SelectorResult{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(raw) != len(Roles) {
		t.Fatalf("expected %d keys, got %d: %s", len(Roles), len(raw), data)
	}
	for _, role := range Roles {
		v, ok := raw[string(role)]
		if !ok {
			t.Errorf("missing key %s", role)
		}
		if v != nil {
			t.Errorf("expected null for %s, got %v", role, v)
		}
	}
}

func TestSelectorResult_UnmarshalDropsNull(t *testing.T) {
	var r SelectorResult
	if err := json.Unmarshal([]byte(`{"price":".price","sku":null}`), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s, ok := r.Lookup(RolePrice); !ok || s != ".price" {
		t.Errorf("expected .price, got %q %v", s, ok)
	}
	if _, ok := r.Lookup(RoleSKU); ok {
		t.Error("expected null sku to stay absent")
	}
	if r.Found() != 1 {
		t.Errorf("expected 1 found role, got %d", r.Found())
	}
}

func TestReport_SelectorsNestedInReport(t *testing.T) {
	data, err := json.Marshal(Report{URL: "https://shop.example", Selectors: SelectorResult{RoleSKU: ".sku"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"price":null`) || !strings.Contains(string(data), `"sku":".sku"`) {
		t.Errorf("expected null indicator in nested selectors, got %s", data)
	}
}
