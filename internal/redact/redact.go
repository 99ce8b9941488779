// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Errors surfaced by the Gemini client can echo request URLs
// carrying the API key, and provider messages may quote fragments of the resume, so
// every error that reaches a log line passes through Error first.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier rules may rewrite text later rules would match.
var rules = []rule{
	// Google API keys have a fixed shape.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// Keys passed as URL query parameters.
	{regexp.MustCompile(`([?&](?:key|api_key|access_token)=)[^&\s"]+`), "${1}" + RedactedKeyPlaceholder},
	// key=value and key: value assignments.
	{
		regexp.MustCompile(`(?i)(api[_-]?key|x-goog-api-key|token|secret)(\s*[:=]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]+`), "Bearer " + RedactedTokenPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
