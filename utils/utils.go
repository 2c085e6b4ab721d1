package utils

import (
	"html"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Sanitize trims and HTML-escapes a string before it reaches the database.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
