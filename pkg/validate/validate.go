package validate

import (
	"net/url"
	"regexp"
)

// codeRE matches short codes: 6-8 characters, letters and digits only.
var codeRE = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// IsValidCode reports whether code is a legal short code.
func IsValidCode(code string) bool {
	return codeRE.MatchString(code)
}

// IsValidURL reports whether s is an absolute http or https URL.
// Malformed input yields false, never an error.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	parsed, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
