package ocr

import (
	"regexp"
	"strings"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)
)

// Flatten collapses all runs of whitespace into single spaces and trims the
// result. Extraction output is compared and length-gated in this form.
func Flatten(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// stripNoise removes obvious OCR line noise (rules of dashes/underscores).
func stripNoise(s string) string {
	return reBoxNoise.ReplaceAllString(s, "")
}
