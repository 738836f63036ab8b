package services

import (
	"regexp"
	"strings"
)

// Normalized text shorter than this is not worth analyzing.
const minContentChars = 50

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeText collapses every run of whitespace (including newlines and
// tabs) into a single space and trims the result. Returns ErrContentTooShort
// when too little content survives.
func NormalizeText(text string) (string, error) {
	normalized := strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	if len(normalized) < minContentChars {
		return "", ErrContentTooShort
	}
	return normalized, nil
}
