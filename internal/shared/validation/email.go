package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// ValidateEmail reports whether s is an acceptable email address. Beyond
// the syntax regex it rejects addresses longer than 254 characters
// (RFC 5321), consecutive dots, a leading or trailing dot, and a dot
// adjacent to the @.
func ValidateEmail(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 254 {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	if strings.Contains(s, "@.") || strings.Contains(s, ".@") {
		return false
	}
	return emailRegex.MatchString(s)
}
