package config

import (
	"fmt"
	"net/textproto"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML configuration. Zero values leave the
// corresponding setting untouched.
type File struct {
	LogLevel   string            `yaml:"log_level"`
	JSON       *bool             `yaml:"json"`
	Engine     string            `yaml:"engine"`
	Timeout    time.Duration     `yaml:"timeout"`
	Wait       time.Duration     `yaml:"wait"`
	UserAgent  string            `yaml:"user_agent"`
	Proxies    []string          `yaml:"proxies"`
	ChromePath string            `yaml:"chrome_path"`
	Headless   *bool             `yaml:"headless"`
	Headers    map[string]string `yaml:"headers"`
	RateLimit  struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`
	ProxyCooldown time.Duration `yaml:"proxy_cooldown"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) apply(c *Config) {
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.JSON != nil {
		c.JSONLog = *f.JSON
	}
	if f.Engine != "" {
		c.Engine = f.Engine
	}
	if f.Timeout > 0 {
		c.Timeout = f.Timeout
	}
	if f.Wait > 0 {
		c.Wait = f.Wait
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if len(f.Proxies) > 0 {
		c.Proxies = f.Proxies
	}
	if f.ChromePath != "" {
		c.ChromePath = f.ChromePath
	}
	if len(f.Headers) > 0 {
		c.Headers = make(map[string]string, len(f.Headers))
		for k, v := range f.Headers {
			c.Headers[textproto.CanonicalMIMEHeaderKey(k)] = v
		}
	}
	if f.Headless != nil {
		c.Headless = *f.Headless
	}
	if f.RateLimit.RPS > 0 {
		c.RateLimitRPS = f.RateLimit.RPS
	}
	if f.RateLimit.Burst > 0 {
		c.RateLimitBurst = f.RateLimit.Burst
	}
	if f.ProxyCooldown > 0 {
		c.ProxyCooldown = f.ProxyCooldown
	}
}
