// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Provider errors and request metadata can carry API keys,
// bearer tokens or connection strings; this package strips them so log lines
// can be shipped without leaking credentials.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedGeminiKeyPlaceholder  = "[REDACTED_GEMINI_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; specific formats come before the generic
// key=value pattern so they keep their more descriptive placeholder.
var rules = []rule{
	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		RedactedJWTPlaceholder,
	},
	// Google API keys, as issued for the Gemini API
	{
		regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		RedactedGeminiKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`),
		"Bearer " + RedactedTokenPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)[a-z][a-z0-9+.-]*://[^/\s:@]+:[^/\s@]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		RedactedEmailPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackTracePlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
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
