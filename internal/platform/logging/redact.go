package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds the lowercase names of request headers that carry
// credentials. Request logging prints them as "[REDACTED]".
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// PersonalFields holds owner data kept out of logs. The names are shared by
// the owner JSON body, the property search query and log attribute keys, so
// one set covers all three.
var PersonalFields = map[string]bool{
	"address":  true,
	"birthday": true,
	"photo":    true,
}

// credentialValues catch secrets that reach a log under an innocent key:
// bearer tokens and compact JWTs (three base64url segments of ten or more
// characters, so version strings do not match).
var credentialValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)api[_\-]?key\s*[:=]\s*\S+`),
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New
// builds. Attributes are redacted by key (headers, personal fields and a few
// secret names) and by value (credentialValues).
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, set := range []map[string]bool{SensitiveHeaders, PersonalFields} {
		for name := range set {
			opts = append(opts, masq.WithFieldName(name))
		}
	}
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("api_key"),
	)
	for _, re := range credentialValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
