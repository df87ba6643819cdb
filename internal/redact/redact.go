// Package redact scrubs credential-shaped substrings from command text
// before it reaches the audit log. The log is plain JSONL on disk and may
// be exported or shared; a guard check of `curl -H "Authorization: ..."`
// must not persist the token.
package redact

import "regexp"

var sensitivePatterns = []*regexp.Regexp{
	// Cloud and VCS tokens with recognizable prefixes
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`xox[baprs]-[0-9]{10,13}-[0-9]{10,13}[a-zA-Z0-9-]*`),
	regexp.MustCompile(`sk_live_[0-9a-zA-Z]{24}`),

	// key=value / key: value assignments of secret-looking names
	regexp.MustCompile(`(?i)(api[_-]?key|secret[_-]?key|access_token|auth_token|password|passwd|token)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`),

	// Bearer headers and basic-auth URLs
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._-]{16,}`),
	regexp.MustCompile(`https?://[^:/\s]+:[^@\s]+@`),
}

const placeholder = "[REDACTED]"

// Redact replaces credential-shaped substrings with a placeholder.
func Redact(input string) string {
	out := input
	for _, pattern := range sensitivePatterns {
		out = pattern.ReplaceAllString(out, placeholder)
	}
	return out
}
