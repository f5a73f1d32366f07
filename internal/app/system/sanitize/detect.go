// internal/app/system/sanitize/detect.go
package sanitize

import "regexp"

// suspiciousPatterns is a fixed set of known dangerous constructs. It is a
// heuristic for audit logging only: the allowlist policies in Text are the
// actual defense, and this list has false negatives on purpose.
var suspiciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`), // inline event handlers (onclick=, onerror=, ...)
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)<embed`),
	regexp.MustCompile(`(?i)eval\(`),
	regexp.MustCompile(`(?i)expression\(`),
}

// Suspicious reports whether the input matches a known dangerous construct.
// A true result should be logged for audit, never used to block the request:
// sanitization proceeds regardless of what this returns.
func Suspicious(input string) bool {
	for _, p := range suspiciousPatterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}
