// internal/engine/dynamic/fetcher_test.go
package dynamic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/internal/engine/chrome"
	"github.com/law-makers/selectorfinder/pkg/models"
)

func requireChrome(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	if chrome.Find("") == "" {
		t.Skip("chrome not available")
	}
}

func TestFetcher_Name(t *testing.T) {
	if got := New().Name(); got != "dynamic" {
		t.Errorf("expected name 'dynamic', got '%s'", got)
	}
}

func TestFetcher_Fetch_RendersJavaScript(t *testing.T) {
	requireChrome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!DOCTYPE html>
<html><head><title>Widget</title></head>
<body><div id="root"></div>
<script>document.getElementById('root').innerHTML = '<span class="price">$10</span>';</script>
</body></html>`))
	}))
	defer server.Close()

	data, err := New().Fetch(context.Background(), models.RequestOptions{
		URL:      server.URL,
		Timeout:  20 * time.Second,
		Wait:     200 * time.Millisecond,
		Headless: true,
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.Title != "Widget" {
		t.Errorf("expected title 'Widget', got '%s'", data.Title)
	}
	if data.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", data.StatusCode)
	}
	if !strings.Contains(data.HTML, `class="price"`) {
		t.Errorf("expected script-rendered markup in HTML, got %s", data.HTML)
	}
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	requireChrome(t)

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	data, err := New().Fetch(context.Background(), models.RequestOptions{
		URL:      server.URL,
		Timeout:  3 * time.Second,
		Headless: true,
	})
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if data != nil {
		t.Error("expected no page data on timeout")
	}
	if !errors.Is(err, engine.ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}
