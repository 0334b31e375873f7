package validate

import (
	"regexp"
	"strings"
)

// Pre-compiled patterns.
var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsValidEmail reports whether s looks like an email address. This is a
// syntactic sanity check, not a deliverability check: local part, an "@",
// and a domain containing a dot, with no whitespace anywhere.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsNotBlank reports whether s contains any non-whitespace character.
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
