package validate

import "testing"

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"abc123", true},
		{"ABCdef12", true},
		{"000000", true},
		{"zZzZzZz", true},
		{"abcde", false},     // too short
		{"abcdefghi", false}, // too long
		{"", false},
		{"abc 12", false},
		{"abc-12", false},
		{"abc_123", false},
		{"héllo1", false},
		{"abc.12", false},
	}

	for _, tt := range tests {
		if got := IsValidCode(tt.code); got != tt.valid {
			t.Errorf("IsValidCode(%q) = %v; want %v", tt.code, got, tt.valid)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"https://sub.example.com:8443/a/b", true},
		{"", false},
		{"example.com", false},
		{"ftp://example.com", false},
		{"mailto:someone@example.com", false},
		{"javascript:alert(1)", false},
		{"http://", false},
		{"not a url", false},
		{"//example.com", false},
	}

	for _, tt := range tests {
		if got := IsValidURL(tt.url); got != tt.valid {
			t.Errorf("IsValidURL(%q) = %v; want %v", tt.url, got, tt.valid)
		}
	}
}
