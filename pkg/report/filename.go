package report

import (
	"regexp"
	"strings"
)

var (
	unsafeCharsRegex = regexp.MustCompile(`[^\w\s\-.]`)
	separatorsRegex  = regexp.MustCompile(`[-\s]+`)
)

// SanitizeFilename reduces a title to a form safe for use in file names:
// characters outside [A-Za-z0-9_.\s-] are dropped, runs of whitespace and
// hyphens collapse to a single hyphen, and leading and trailing hyphens
// are trimmed.
func SanitizeFilename(title string) string {
	sanitized := unsafeCharsRegex.ReplaceAllString(title, "")
	sanitized = separatorsRegex.ReplaceAllString(sanitized, "-")
	return strings.Trim(sanitized, "-")
}
