// Package static fetches pages with a plain HTTP GET. No JavaScript runs,
// so it only suits shops that render product markup on the server.
package static

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/internal/page"
	"github.com/law-makers/selectorfinder/pkg/models"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes caps the response body read into memory
const maxBodyBytes = 10 << 20

// Fetcher implements the Fetcher interface over net/http
type Fetcher struct {
	client *http.Client
}

// New creates a static Fetcher. A nil client gets a default one.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		}
	}
	return &Fetcher{client: client}
}

// Name returns the name of this fetcher
func (s *Fetcher) Name() string {
	return string(models.EngineStatic)
}

// Fetch retrieves opts.URL and returns the raw HTML
func (s *Fetcher) Fetch(ctx context.Context, opts models.RequestOptions) (*models.PageData, error) {
	start := time.Now()

	log.Debug().
		Str("url", opts.URL).
		Str("engine", s.Name()).
		Msg("Starting fetch")

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return nil, engine.NewEngineError(engine.ErrCodeValidation, "failed to create request", err)
	}

	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	client := s.client
	if opts.Proxy != "" {
		client, err = s.withProxy(opts.Proxy)
		if err != nil {
			return nil, engine.NewEngineError(engine.ErrCodeValidation, "invalid proxy", err)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, engine.FetchError(engine.ErrCodeNetworkError, "failed to fetch URL", err).
			WithDetail("url", opts.URL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, engine.FetchError(engine.ErrCodeNetworkError, "failed to read response", err)
	}

	data := &models.PageData{
		URL:          opts.URL,
		FinalURL:     resp.Request.URL.String(),
		StatusCode:   resp.StatusCode,
		HTML:         string(body),
		FetchedAt:    time.Now(),
		ResponseTime: time.Since(start).Milliseconds(),
	}
	if p, err := page.Parse(data.HTML); err == nil {
		data.Title = p.Title()
	}

	log.Debug().
		Str("url", opts.URL).
		Int("status", resp.StatusCode).
		Int("html_bytes", len(body)).
		Int64("response_time_ms", data.ResponseTime).
		Msg("Fetch completed")

	return data, nil
}

// withProxy returns a client sharing s.client's settings but routed
// through proxyURL.
func (s *Fetcher) withProxy(proxyURL string) (*http.Client, error) {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy %q: %w", proxyURL, err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if t, ok := s.client.Transport.(*http.Transport); ok {
		transport = t.Clone()
	}
	transport.Proxy = http.ProxyURL(u)

	c := *s.client
	c.Transport = transport
	return &c, nil
}
