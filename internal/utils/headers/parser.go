// Package headers parses extra request headers given on the command line.
package headers

import (
	"fmt"
	"net/textproto"
	"strings"
)

// ParseHeaders converts "Key: Value" strings into a map keyed by the
// canonical header name. A later value for the same key wins.
func ParseHeaders(h []string) (map[string]string, error) {
	if len(h) == 0 {
		return nil, nil
	}

	m := make(map[string]string, len(h))
	for _, hdr := range h {
		key, value, ok := strings.Cut(hdr, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" || strings.ContainsAny(key, " \t") {
			return nil, fmt.Errorf("malformed header %q (want \"Key: Value\")", hdr)
		}
		m[textproto.CanonicalMIMEHeaderKey(key)] = strings.TrimSpace(value)
	}
	return m, nil
}
