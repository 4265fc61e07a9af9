package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

const redactedPlaceholder = "[REDACTED]"

// sensitiveHeaders lists header names (lowercase) that carry credentials and
// must never reach the logs.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// RedactHeaders converts request headers into slog attributes for structured
// logging. Credential-bearing headers are replaced with a placeholder;
// everything else passes through, multi-value headers joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		value := strings.Join(vals, ",")
		if sensitiveHeaders[strings.ToLower(key)] {
			value = redactedPlaceholder
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
