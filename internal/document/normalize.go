// Package document handles raw statement documents: extracting text via
// the external extraction service and normalizing it for the AI pipeline.
package document

import (
	"regexp"
	"strings"
)

var (
	// Control and invisible formatting characters are replaced with a
	// space rather than deleted, so words on either side never merge.
	controlChars   = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Zl}\p{Zp}]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Normalize strips control and format characters from raw extracted text
// and collapses whitespace runs to single spaces. It is pure and
// idempotent; empty input yields an empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := controlChars.ReplaceAllString(raw, " ")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
