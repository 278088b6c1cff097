package provider

import (
	"net/url"
	"strings"
)

type redirectParam struct {
	key   string
	value string
}

// appendRedirectParams renders query parameters in the given order. The
// standard encoder sorts keys alphabetically, which would break the published
// parameter ordering, so the query string is written by hand.
func appendRedirectParams(base string, params []redirectParam) string {
	var b strings.Builder
	b.WriteString(base)
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	for _, param := range params {
		b.WriteString(sep)
		b.WriteString(param.key)
		b.WriteString("=")
		b.WriteString(percentEncode(param.value))
		sep = "&"
	}
	return b.String()
}

func percentEncode(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// BuildErrorRedirect maps a redirectable validation failure onto the
// error-redirect location: error, error_description, scope (invalid-scope
// only), state and iss, in that order, all percent-encoded.
func BuildErrorRedirect(redirectURI, state, issuer string, failure *ValidationFailure) string {
	params := []redirectParam{
		{"error", failure.ErrorCode()},
		{"error_description", failure.Description},
	}
	if failure.Kind == FailureInvalidScope {
		params = append(params, redirectParam{"scope", failure.Scope})
	}
	params = append(params,
		redirectParam{"state", state},
		redirectParam{"iss", issuer},
	)
	return appendRedirectParams(redirectURI, params)
}

// BuildCodeRedirect is the success counterpart: code, state and iss.
func BuildCodeRedirect(redirectURI, code, state, issuer string) string {
	return appendRedirectParams(redirectURI, []redirectParam{
		{"code", code},
		{"state", state},
		{"iss", issuer},
	})
}
