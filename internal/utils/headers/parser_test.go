package headers

import (
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	in := []string{"user-agent: Bot", "Accept: text/html", "Cookie: region=eu; currency=EUR", "accept:  application/json "}
	out, err := ParseHeaders(in)
	if err != nil {
		t.Fatalf("ParseHeaders failed: %v", err)
	}
	expected := map[string]string{
		"User-Agent": "Bot",
		"Accept":     "application/json",
		"Cookie":     "region=eu; currency=EUR",
	}
	if !reflect.DeepEqual(out, expected) {
		t.Fatalf("unexpected parse result: %#v", out)
	}
}

func TestParseHeaders_Malformed(t *testing.T) {
	for _, in := range []string{"BadHeader", ": value", "Bad Key: value"} {
		if _, err := ParseHeaders([]string{in}); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestParseHeaders_Empty(t *testing.T) {
	out, err := ParseHeaders(nil)
	if err != nil || out != nil {
		t.Errorf("expected nil map, got %v, %v", out, err)
	}
}
