package urlutil

import "testing"

func TestValidate(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path",
		"https://shop.example:8443/p/widget?variant=2",
	}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Fatalf("expected valid, got error: %v", err)
		}
	}

	invalid := []string{"", "ftp://example.com", "//example.com", "http:///", "example.com", " https://example.com", "https://exa mple.com"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Fatalf("expected invalid for %q", u)
		}
	}
}

func TestDomain(t *testing.T) {
	tests := map[string]string{
		"https://shop.example/p/1":      "shop.example",
		"http://localhost:8080/product": "localhost:8080",
		"::bad":                         "",
	}
	for in, want := range tests {
		if got := Domain(in); got != want {
			t.Errorf("Domain(%q) = %q, want %q", in, got, want)
		}
	}
}
