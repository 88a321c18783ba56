// Package rod is the go-rod page engine. It loads the page in a stealth tab
// so that shops with basic bot detection still serve their product markup.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/internal/engine/chrome"
	"github.com/law-makers/selectorfinder/pkg/models"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds a page load when the request does not set one
const DefaultTimeout = 30 * time.Second

// Fetcher drives a freshly launched Chrome through go-rod
type Fetcher struct{}

// New creates a go-rod backed Fetcher
func New() *Fetcher {
	return &Fetcher{}
}

// Name returns the name of this fetcher
func (f *Fetcher) Name() string {
	return string(models.EngineRod)
}

// Fetch launches Chrome, loads opts.URL in a stealth tab and returns the
// rendered document. The launcher process is killed on every return path.
func (f *Fetcher) Fetch(ctx context.Context, opts models.RequestOptions) (*models.PageData, error) {
	start := time.Now()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	l := launcher.New().
		Context(ctx).
		Headless(opts.Headless).
		NoSandbox(true).
		Set("disable-dev-shm-usage").
		Set("disable-blink-features", "AutomationControlled")
	if path := chrome.Find(opts.ChromePath); path != "" {
		l = l.Bin(path)
	}
	if opts.Proxy != "" {
		l = l.Proxy(opts.Proxy)
	}
	defer l.Cleanup()
	defer l.Kill()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, engine.FetchError(engine.ErrCodeBrowserLaunch, "failed to launch Chrome", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, engine.FetchError(engine.ErrCodeBrowserLaunch, "failed to connect to Chrome", err)
	}
	defer browser.Close()

	log.Debug().Dur("elapsed_ms", time.Since(start)).Str("engine", f.Name()).Msg("Browser started")

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, engine.FetchError(engine.ErrCodeBrowserLaunch, "failed to open tab", err)
	}
	defer page.Close()

	if opts.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: opts.UserAgent}); err != nil {
			log.Warn().Err(err).Msg("Failed to override user agent")
		}
	}

	if len(opts.Headers) > 0 {
		dict := make([]string, 0, 2*len(opts.Headers))
		for k, v := range opts.Headers {
			dict = append(dict, k, v)
		}
		if _, err := page.SetExtraHeaders(dict); err != nil {
			return nil, engine.FetchError(engine.ErrCodeNetworkError, "failed to set request headers", err)
		}
	}

	if err := page.Navigate(opts.URL); err != nil {
		return nil, fetchError(ctx, opts, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fetchError(ctx, opts, err)
	}

	if opts.Wait > 0 {
		select {
		case <-time.After(opts.Wait):
		case <-ctx.Done():
			return nil, fetchError(ctx, opts, ctx.Err())
		}
	}

	htmlContent, err := page.HTML()
	if err != nil {
		return nil, fetchError(ctx, opts, err)
	}

	data := &models.PageData{
		URL:       opts.URL,
		HTML:      htmlContent,
		FetchedAt: time.Now(),
	}
	if info, err := page.Info(); err == nil {
		data.Title = info.Title
		data.FinalURL = info.URL
	}
	data.ResponseTime = time.Since(start).Milliseconds()

	log.Debug().
		Str("url", opts.URL).
		Int("html_bytes", len(htmlContent)).
		Int64("elapsed_ms", data.ResponseTime).
		Msg("Fetch completed")

	return data, nil
}

func fetchError(ctx context.Context, opts models.RequestOptions, err error) error {
	if ctx.Err() != nil {
		err = ctx.Err()
	}
	return engine.FetchError(engine.ErrCodeNetworkError, "page load failed", err).
		WithDetail("url", opts.URL)
}
