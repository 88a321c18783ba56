// Package analyzer runs one product-page analysis: validate the URL, fetch
// the rendered page, parse it and resolve a selector for every role.
package analyzer

import (
	"context"
	"time"

	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/internal/matcher"
	"github.com/law-makers/selectorfinder/internal/page"
	"github.com/law-makers/selectorfinder/internal/proxy"
	"github.com/law-makers/selectorfinder/internal/ratelimit"
	"github.com/law-makers/selectorfinder/internal/reqctx"
	urlutil "github.com/law-makers/selectorfinder/internal/utils/url"
	"github.com/law-makers/selectorfinder/pkg/models"
)

// Options are the fetch settings applied to every analysis
type Options struct {
	Timeout    time.Duration
	Wait       time.Duration
	UserAgent  string
	ChromePath string
	Headless   bool
	Headers    map[string]string
	Explain    bool
}

// Analyzer turns a URL into a Report. It holds no per-page state, so a
// single Analyzer can serve any number of sequential analyses.
type Analyzer struct {
	fetcher engine.Fetcher
	limiter ratelimit.RateLimiter
	proxies *proxy.Pool
	opts    Options
}

// New creates an Analyzer. limiter and proxies may be nil.
func New(fetcher engine.Fetcher, limiter ratelimit.RateLimiter, proxies *proxy.Pool, opts Options) *Analyzer {
	if proxies == nil {
		proxies = proxy.NewPool(nil, 0)
	}
	return &Analyzer{
		fetcher: fetcher,
		limiter: limiter,
		proxies: proxies,
		opts:    opts,
	}
}

// Engine returns the name of the page fetcher in use
func (a *Analyzer) Engine() string {
	return a.fetcher.Name()
}

// Analyze validates rawURL, fetches it and returns the selectors found.
// Any failure aborts the whole analysis and no Report is returned.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*models.Report, error) {
	ctx = reqctx.WithAnalysis(ctx, rawURL)
	logger := reqctx.Logger(ctx)

	if err := urlutil.ValidateURL(rawURL); err != nil {
		return nil, reqctx.NewAnalysisError(ctx, engine.NewEngineError(engine.ErrCodeValidation, "please enter a valid URL", engine.ErrInvalidURL).
			WithDetail("reason", err.Error()))
	}

	if a.limiter != nil && !a.limiter.Allow(rawURL) {
		logger.Debug().Str("domain", urlutil.Domain(rawURL)).Msg("Waiting for rate limit")
		if err := a.limiter.Wait(ctx, rawURL); err != nil {
			return nil, reqctx.NewAnalysisError(ctx, engine.FetchError(engine.ErrCodeNetworkError, "analysis cancelled while waiting for rate limit", err))
		}
	}

	proxyURL := a.proxies.Next()
	logger.Debug().
		Str("engine", a.fetcher.Name()).
		Bool("proxy", proxyURL != "").
		Msg("Analyzing page")

	data, err := a.fetcher.Fetch(ctx, models.RequestOptions{
		URL:        rawURL,
		Timeout:    a.opts.Timeout,
		Wait:       a.opts.Wait,
		UserAgent:  a.opts.UserAgent,
		Proxy:      proxyURL,
		ChromePath: a.opts.ChromePath,
		Headless:   a.opts.Headless,
		Headers:    a.opts.Headers,
	})
	if err != nil {
		if code, _ := engine.CodeOf(err); code == engine.ErrCodeNetworkError {
			a.proxies.MarkFailed(proxyURL)
		}
		logger.Debug().Err(err).Msg("Fetch failed")
		return nil, reqctx.NewAnalysisError(ctx, err)
	}
	a.proxies.MarkHealthy(proxyURL)

	p, err := page.Parse(data.HTML)
	if err != nil {
		return nil, reqctx.NewAnalysisError(ctx, engine.NewEngineError(engine.ErrCodeParseError, "failed to parse page", err))
	}

	analysis := reqctx.FromContext(ctx)
	report := &models.Report{
		AnalysisID:   analysis.ID,
		URL:          rawURL,
		FinalURL:     data.FinalURL,
		Domain:       urlutil.Domain(rawURL),
		Engine:       a.fetcher.Name(),
		StatusCode:   data.StatusCode,
		Title:        data.Title,
		Selectors:    matcher.FindAll(p),
		FetchedAt:    data.FetchedAt,
		ResponseTime: data.ResponseTime,
	}
	if report.Title == "" {
		report.Title = p.Title()
	}
	if a.opts.Explain {
		report.Matches = matcher.Explain(p)
	}

	logger.Info().
		Int("found", report.Selectors.Found()).
		Int("roles", len(models.Roles)).
		Int64("elapsed_ms", analysis.Elapsed().Milliseconds()).
		Msg("Analysis completed")

	return report, nil
}
