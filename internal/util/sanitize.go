package util

import (
	"html"
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML membuang tag HTML dari deskripsi lowongan sebelum dikirim ke LLM
// atau dibuat embedding-nya.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	text := htmlTagPattern.ReplaceAllString(s, " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
