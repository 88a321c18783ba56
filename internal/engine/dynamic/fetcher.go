// internal/engine/dynamic/fetcher.go
package dynamic

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/pkg/models"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a page load when the request does not set one
const DefaultTimeout = 30 * time.Second

// Fetcher renders pages with headless Chrome driven by chromedp.
// Every call launches its own browser and tears it down before returning,
// so no session state leaks between analyses.
type Fetcher struct{}

// New creates a chromedp backed Fetcher
func New() *Fetcher {
	return &Fetcher{}
}

// Name returns the name of this fetcher
func (f *Fetcher) Name() string {
	return string(models.EngineDynamic)
}

// Fetch launches Chrome, loads opts.URL and returns the rendered document
func (f *Fetcher) Fetch(ctx context.Context, opts models.RequestOptions) (*models.PageData, error) {
	start := time.Now()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log.Debug().
		Str("url", opts.URL).
		Str("engine", f.Name()).
		Dur("timeout", timeout).
		Msg("Starting fetch")

	// The deadline covers browser start-up as well as navigation
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(opts)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// Start the browser explicitly so launch failures are told apart from
	// navigation failures.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, launchError(err)
	}
	log.Debug().Dur("elapsed_ms", time.Since(start)).Msg("Browser started")

	var (
		mu         sync.Mutex
		statusCode int64
	)
	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok || resp.Type != network.ResourceTypeDocument {
			return
		}
		mu.Lock()
		if statusCode == 0 {
			statusCode = resp.Response.Status
		}
		mu.Unlock()
	})

	var htmlContent, title, location string
	tasks := chromedp.Tasks{network.Enable()}
	if len(opts.Headers) > 0 {
		extra := make(network.Headers, len(opts.Headers))
		for k, v := range opts.Headers {
			extra[k] = v
		}
		tasks = append(tasks, network.SetExtraHTTPHeaders(extra))
	}
	tasks = append(tasks, chromedp.Navigate(opts.URL))
	if opts.Wait > 0 {
		log.Debug().Dur("wait", opts.Wait).Msg("Waiting for page to settle")
		tasks = append(tasks, chromedp.Sleep(opts.Wait))
	}
	tasks = append(tasks,
		chromedp.Location(&location),
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &htmlContent, chromedp.ByQuery),
	)

	if err := chromedp.Run(browserCtx, tasks); err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, engine.FetchError(engine.ErrCodeNetworkError, "page load failed", err).
			WithDetail("url", opts.URL).
			WithDetail("timeout", timeout.String())
	}

	mu.Lock()
	code := int(statusCode)
	mu.Unlock()

	elapsed := time.Since(start)
	log.Debug().
		Str("url", opts.URL).
		Int("status", code).
		Int("html_bytes", len(htmlContent)).
		Int64("elapsed_ms", elapsed.Milliseconds()).
		Msg("Fetch completed")

	return &models.PageData{
		URL:          opts.URL,
		FinalURL:     location,
		StatusCode:   code,
		Title:        title,
		HTML:         htmlContent,
		FetchedAt:    time.Now(),
		ResponseTime: elapsed.Milliseconds(),
	}, nil
}

func launchError(err error) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, exec.ErrNotFound) {
		return engine.NewEngineError(engine.ErrCodeBrowserLaunch, "failed to start Chrome", errors.Join(engine.ErrBrowserNotFound, err))
	}
	return engine.FetchError(engine.ErrCodeBrowserLaunch, "failed to start Chrome", err)
}
