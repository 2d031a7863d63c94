package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize cleans article HTML, keeping safe formatting.
// Input that only needed escaping (a bare "&" or "<") is returned unchanged so stored text
// matches what the client sent.
func Sanitize(input string) string {
	out := ugc.Sanitize(input)
	if html.UnescapeString(out) == input {
		return input
	}
	return out
}

// SanitizeText strips all markup from short single-line fields like titles and returns plain text.
func SanitizeText(input string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(input)))
}
