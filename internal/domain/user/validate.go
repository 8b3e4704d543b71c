package user

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the local@domain.tld shape; anything stricter tends to
// reject addresses that real mail servers accept.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword requires at least 6 characters including one letter and
// one digit.
func ValidPassword(s string) bool {
	if len(s) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	return hasLetter && hasDigit
}
