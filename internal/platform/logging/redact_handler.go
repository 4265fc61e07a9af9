package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names that carry
// credentials. The masq layer below and the HTTP middleware's RedactHeaders
// both read from this single set so they stay in agreement.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	// "Bearer <token>" appearing as a raw string value.
	reBearer = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Raw JWTs (header.payload.signature). Each segment needs 10+ chars
	// so dot-separated version strings do not trip it.
	reJWT = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// Inline "api_key=<value>" or "apikey:<value>" buried in free-form text.
	reInlineAPIKey = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// Options added on top of the SensitiveHeaders set: 3 field names, 2
// prefixes, 3 regexes.
const extraRedactOptions = 8

// newRedactAttr builds the ReplaceAttr function wired into every handler.
// Known sensitive fields are masked by name; the regexes catch credential
// values that slip through in arbitrary strings.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, extraRedactOptions+len(SensitiveHeaders))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),

		// Catches variants like "secret_key" and "api_key_v2".
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),

		masq.WithRegex(reBearer),
		masq.WithRegex(reJWT),
		masq.WithRegex(reInlineAPIKey),
	)

	return masq.New(opts...)
}
