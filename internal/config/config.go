package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/law-makers/selectorfinder/internal/proxy"
	"github.com/law-makers/selectorfinder/internal/utils/headers"
	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// Fetching
	Engine     string
	Timeout    time.Duration
	Wait       time.Duration
	UserAgent  string
	Proxies    []string
	ChromePath string
	Headless   bool
	Headers    map[string]string

	// Pacing
	RateLimitRPS   float64
	RateLimitBurst int
	ProxyCooldown  time.Duration
}

// Default returns a Config with every setting at its default
func Default() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		Engine:         DefaultEngine,
		Timeout:        DefaultTimeout,
		Wait:           DefaultWait,
		UserAgent:      DefaultUserAgent,
		Headless:       DefaultHeadless,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		ProxyCooldown:  DefaultProxyCooldown,
	}
}

// Load builds a Config by combining defaults, an optional config file, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Default()

	if path := flagString(cmd, "config"); path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
		f.apply(cfg)
	}

	applyEnv(cfg)

	if err := applyFlags(cfg, cmd); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SELECTORFINDER_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SELECTORFINDER_PROXY"); v != "" {
		cfg.Proxies = proxy.ParseList(v)
	}
	if v := os.Getenv("SELECTORFINDER_CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv("SELECTORFINDER_ENGINE"); v != "" {
		cfg.Engine = strings.ToLower(v)
	}
}

func applyFlags(cfg *Config, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	if s := flagString(cmd, "user-agent"); s != "" {
		cfg.UserAgent = s
	}
	if s := flagString(cmd, "proxy"); s != "" {
		cfg.Proxies = proxy.ParseList(s)
	}
	if s := flagString(cmd, "chrome-path"); s != "" {
		cfg.ChromePath = s
	}
	if s := flagString(cmd, "engine"); s != "" {
		cfg.Engine = strings.ToLower(s)
	}
	if s := flagString(cmd, "timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid --timeout %q: %w", s, err)
		}
		cfg.Timeout = d
	}
	if s := flagString(cmd, "wait"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid --wait %q: %w", s, err)
		}
		cfg.Wait = d
	}
	if h, err := cmd.Flags().GetStringArray("header"); err == nil && len(h) > 0 {
		parsed, err := headers.ParseHeaders(h)
		if err != nil {
			return fmt.Errorf("invalid --header: %w", err)
		}
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(parsed))
		}
		for k, v := range parsed {
			cfg.Headers[k] = v
		}
	}
	if f := cmd.Flags().Lookup("headless"); f != nil && f.Changed {
		cfg.Headless = f.Value.String() == "true"
	}
	if flagString(cmd, "json") == "true" {
		cfg.JSONLog = true
	}
	if flagString(cmd, "quiet") == "true" {
		cfg.LogLevel = "error"
	}
	if flagString(cmd, "verbose") == "true" {
		cfg.LogLevel = "debug"
	}
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	if cmd == nil {
		return ""
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}
