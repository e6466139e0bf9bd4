package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/property-manager/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts request headers into log attributes sorted by
// header name. Headers in logging.SensitiveHeaders are replaced with
// "[REDACTED]"; multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	return redactValues(headers, func(key string) bool {
		return logging.SensitiveHeaders[strings.ToLower(key)]
	})
}

// RedactQuery does the same for query parameters, hiding the owner fields
// in logging.PersonalFields (a property search can filter by address).
func RedactQuery(query url.Values) []slog.Attr {
	return redactValues(query, func(key string) bool {
		return logging.PersonalFields[strings.ToLower(key)]
	})
}

func redactValues(values map[string][]string, hide func(string) bool) []slog.Attr {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := redacted
		if !hide(key) {
			value = strings.Join(values[key], ",")
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
