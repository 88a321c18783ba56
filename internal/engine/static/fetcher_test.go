package static

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/pkg/models"
)

func TestFetcher_Fetch_BasicHTML(t *testing.T) {
	var gotUA, gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title> Widget Shop </title></head>
<body><h1 class="title">Widget</h1></body>
</html>`))
	}))
	defer server.Close()

	data, err := New(nil).Fetch(context.Background(), models.RequestOptions{
		URL:       server.URL,
		Timeout:   5 * time.Second,
		UserAgent: "SelectorFinder/Test",
		Headers:   map[string]string{"Cookie": "region=eu"},
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.StatusCode != http.StatusOK {
		t.Errorf("expected status code 200, got %d", data.StatusCode)
	}
	if data.Title != "Widget Shop" {
		t.Errorf("expected title 'Widget Shop', got '%s'", data.Title)
	}
	if gotUA != "SelectorFinder/Test" {
		t.Errorf("expected user agent to be sent, got '%s'", gotUA)
	}
	if gotCookie != "region=eu" {
		t.Errorf("expected extra header to be sent, got '%s'", gotCookie)
	}
	if data.HTML == "" {
		t.Error("expected HTML to be non-empty")
	}
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	data, err := New(nil).Fetch(context.Background(), models.RequestOptions{
		URL:     server.URL,
		Timeout: 100 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if data != nil {
		t.Error("expected no page data on timeout")
	}
	if code, _ := engine.CodeOf(err); code != engine.ErrCodeTimeout {
		t.Errorf("expected TIMEOUT code, got %q (%v)", code, err)
	}
	if !errors.Is(err, engine.ErrTimeout) {
		t.Errorf("expected ErrTimeout in chain, got %v", err)
	}
}

func TestFetcher_Fetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := New(nil).Fetch(context.Background(), models.RequestOptions{URL: addr, Timeout: 2 * time.Second})
	if code, _ := engine.CodeOf(err); code != engine.ErrCodeNetworkError {
		t.Errorf("expected NETWORK_ERROR, got %q (%v)", code, err)
	}
}

func TestFetcher_Fetch_Proxy(t *testing.T) {
	var proxied bool
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = true
		w.Write([]byte(`<html><head><title>via proxy</title></head></html>`))
	}))
	defer proxy.Close()

	data, err := New(nil).Fetch(context.Background(), models.RequestOptions{
		URL:     "http://shop.example/product/1",
		Timeout: 2 * time.Second,
		Proxy:   proxy.URL,
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !proxied || data.Title != "via proxy" {
		t.Errorf("expected request to go through proxy, got title %q", data.Title)
	}
}

func TestFetcher_Name(t *testing.T) {
	if got := New(nil).Name(); got != "static" {
		t.Errorf("expected name 'static', got '%s'", got)
	}
}
