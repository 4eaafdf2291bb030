// Package redact provides utilities for redacting sensitive information
// from strings before they are logged. This prevents the accidental
// leakage of credentials, connection strings, and tokens that might be
// embedded in error messages bubbling up from lower layers.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedConnStringPlaceholder = "[REDACTED_CONN_STRING]"
)

// Precompiled patterns for the secrets this system actually handles:
// database connection strings, password fields, JWT tokens, and bcrypt
// hashes.
var (
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql)://[^@\s]+@[^\s]+`)

	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Standard three-part base64url-encoded JWT token format.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// bcrypt hashes: $2a$/$2b$/$2y$ followed by cost and 53 chars.
	bcryptHashRegex = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)

	secretKeyRegex = regexp.MustCompile(`(?i)(jwt[_-]?secret|signing[_-]?key|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
)

// String redacts sensitive content from the given string.
func String(s string) string {
	if s == "" {
		return s
	}

	s = dbConnRegex.ReplaceAllString(s, RedactedConnStringPlaceholder)
	s = jwtTokenRegex.ReplaceAllString(s, RedactionPlaceholder)
	s = bcryptHashRegex.ReplaceAllString(s, RedactionPlaceholder)
	s = passwordRegex.ReplaceAllString(s, "$1$2"+RedactedCredentialPlaceholder)
	s = secretKeyRegex.ReplaceAllString(s, "$1$2"+RedactedCredentialPlaceholder)

	return s
}

// Error redacts sensitive content from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
