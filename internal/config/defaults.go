package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel       = "warn"
	DefaultJSONLog        = false
	DefaultEngine         = "dynamic"
	DefaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	DefaultTimeout        = 30 * time.Second
	DefaultWait           = 0
	DefaultHeadless       = true
	DefaultRateLimitRPS   = 1.0
	DefaultRateLimitBurst = 2
	DefaultProxyCooldown  = 5 * time.Minute
	MaxTimeout            = 10 * time.Minute
)

// Engines lists the accepted page fetcher names
var Engines = []string{"dynamic", "rod", "static"}
