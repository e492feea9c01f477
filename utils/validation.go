// utils/validation.go
package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate validates a strict YYYY-MM-DD calendar date and returns it
// normalized to the same layout.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// CleanText trims surrounding whitespace before persistence.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

// CleanOptional trims and normalizes empty strings to absent (NULL).
func CleanOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
