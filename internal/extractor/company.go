package extractor

import "strings"

// CompanyName returns the document's declared party name: the first line of
// the trimmed text, concatenated with the second line when that one is
// non-empty. This is a heuristic: plenty of receipts print an address or a
// date on line two, and the caller gets whatever the printer put there.
func CompanyName(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	lines := strings.Split(trimmed, "\n")
	name := lines[0]
	if len(lines) > 1 {
		if second := strings.TrimSpace(lines[1]); second != "" {
			name += " " + second
		}
	}
	return name, true
}
