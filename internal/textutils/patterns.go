// Package textutils provides ordered pattern matching over recognized text.
package textutils

import (
	"regexp"
	"strings"
)

// MustCompileAll compiles every expression with case-insensitive, multi-line
// matching, preserving order. It panics on an invalid expression, so the
// fixed pattern sets are validated at process start.
func MustCompileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?im)`+expr))
	}
	return patterns
}

// FindPattern applies the patterns in order and returns the first result.
// When the winning pattern has a capture group the trimmed content of group 1
// is returned, otherwise the trimmed full match. Later patterns are never
// evaluated once one succeeds. The second return value reports whether any
// pattern matched.
func FindPattern(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if len(match) > 1 {
			return strings.TrimSpace(match[1]), true
		}
		return strings.TrimSpace(match[0]), true
	}
	return "", false
}

// FindPatternOr is FindPattern with a caller-supplied fallback.
func FindPatternOr(text string, patterns []*regexp.Regexp, fallback string) string {
	if value, ok := FindPattern(text, patterns); ok {
		return value
	}
	return fallback
}
