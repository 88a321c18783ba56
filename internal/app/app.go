// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/law-makers/selectorfinder/internal/analyzer"
	"github.com/law-makers/selectorfinder/internal/config"
	"github.com/law-makers/selectorfinder/internal/engine"
	"github.com/law-makers/selectorfinder/internal/engine/dynamic"
	"github.com/law-makers/selectorfinder/internal/engine/rod"
	"github.com/law-makers/selectorfinder/internal/engine/static"
	"github.com/law-makers/selectorfinder/internal/proxy"
	"github.com/law-makers/selectorfinder/internal/ratelimit"
	"github.com/law-makers/selectorfinder/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands. The
// limiter and proxy pool live here so that repeated interactive analyses
// share pacing and proxy health. Browsers are never held between analyses.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	RateLimiter ratelimit.RateLimiter
	Proxies     *proxy.Pool
	HTTPClient  *http.Client
	Fetcher     engine.Fetcher
	startTime   time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates the rate limiter for per-domain pacing
//   - Creates the proxy pool
//   - Selects the page fetcher named by cfg.Engine
//
// If any step fails, an error is returned and no resources are allocated.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := SetupLogging(cfg, os.Stderr)

	rateLimiter := ratelimit.NewDomainLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	logger.Debug().
		Float64("rps", cfg.RateLimitRPS).
		Int("burst", cfg.RateLimitBurst).
		Msg("Rate limiter initialized")

	proxies := proxy.NewPool(cfg.Proxies, cfg.ProxyCooldown)
	logger.Debug().Int("proxies", proxies.Len()).Msg("Proxy pool initialized")

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	fetcher, err := NewFetcher(cfg.Engine, httpClient)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("engine", fetcher.Name()).Msg("Fetcher initialized")

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		RateLimiter: rateLimiter,
		Proxies:     proxies,
		HTTPClient:  httpClient,
		Fetcher:     fetcher,
		startTime:   time.Now(),
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

// SetupLogging sets the global zerolog level and output from cfg and
// returns the configured logger.
func SetupLogging(cfg *config.Config, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch cfg.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	var logWriter io.Writer = w
	if !cfg.JSONLog {
		logWriter = zerolog.ConsoleWriter{Out: w}
	}

	log.Logger = zerolog.New(logWriter).With().Timestamp().Logger()
	log.Logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")
	return log.Logger
}

// NewFetcher returns the page fetcher registered under name
func NewFetcher(name string, client *http.Client) (engine.Fetcher, error) {
	switch models.EngineName(name) {
	case models.EngineDynamic, "":
		return dynamic.New(), nil
	case models.EngineRod:
		return rod.New(), nil
	case models.EngineStatic:
		return static.New(client), nil
	default:
		return nil, fmt.Errorf("%w: %q", engine.ErrUnknownEngine, name)
	}
}

// Analyzer returns an Analyzer sharing the application's fetcher, limiter
// and proxy pool.
func (a *Application) Analyzer(explain bool) *analyzer.Analyzer {
	return analyzer.New(a.Fetcher, a.RateLimiter, a.Proxies, analyzer.Options{
		Timeout:    a.Config.Timeout,
		Wait:       a.Config.Wait,
		UserAgent:  a.Config.UserAgent,
		ChromePath: a.Config.ChromePath,
		Headless:   a.Config.Headless,
		Headers:    a.Config.Headers,
		Explain:    explain,
	})
}

// Close gracefully shuts down the application and all its resources.
//
// Browser sessions are released by each fetch, so only pooled HTTP
// connections remain to be closed here.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Debug().Msg("Shutting down application")

	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
