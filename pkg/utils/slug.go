package utils

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe   = regexp.MustCompile(`<.*?>`)
	slugCleanRe = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	slugDashRe  = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts an ad title (Arabic or Latin) into a URL slug.
// Titles that clean down to nothing fall back to "ad".
func Slugify(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = slugCleanRe.ReplaceAllString(text, "")
	text = slugDashRe.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	if runes := []rune(text); len(runes) > 50 {
		text = strings.TrimRight(string(runes[:50]), "-")
	}

	if text == "" {
		return "ad"
	}
	return strings.ToLower(text)
}
