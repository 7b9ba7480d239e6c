package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphens  = regexp.MustCompile(`-+`)
	slugTrimEnds = regexp.MustCompile(`^-|-$`)
)

// GenerateSlug normalizes a display name into a URL-safe slug:
// lower-cased, whitespace collapsed to single hyphens, everything outside
// [a-z0-9-] stripped, repeated hyphens collapsed, edge hyphens trimmed.
func GenerateSlug(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimSpace(strings.ToLower(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	s = slugTrimEnds.ReplaceAllString(s, "")
	return s
}
