package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL checks that urlStr is an absolute http(s) URL with a host
func ValidateURL(urlStr string) error {
	if strings.TrimSpace(urlStr) != urlStr || urlStr == "" {
		return fmt.Errorf("invalid URL: %q", urlStr)
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %q", parsed.Scheme)
	}

	if parsed.Hostname() == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	if strings.ContainsAny(parsed.Host, " \t") {
		return fmt.Errorf("invalid URL: malformed host %q", parsed.Host)
	}

	return nil
}

// Domain returns the host component of urlStr including any port, or ""
// when it cannot be parsed.
func Domain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
