package patch

import "strings"

// Span is the byte range [Start, End) of a located match.
type Span struct {
	Start int
	End   int
}

// CountOccurrences counts non-overlapping literal occurrences of search in
// content, scanning left to right. Each found occurrence consumes its span
// before the scan continues, so overlapping occurrences are not
// double-counted. strings.Index compares bytes, which makes every character
// of search literal; no pattern escaping is needed.
func CountOccurrences(content, search string) int {
	if search == "" {
		return len(content) + 1 // empty string matches at every position + end
	}
	count := 0
	pos := 0
	for {
		idx := strings.Index(content[pos:], search)
		if idx == -1 {
			break
		}
		count++
		pos += idx + len(search)
	}
	return count
}

// LocateUnique returns the span of the single occurrence of search in
// content. ok is false when there are zero or multiple occurrences.
func LocateUnique(content, search string) (span Span, ok bool) {
	if CountOccurrences(content, search) != 1 {
		return Span{}, false
	}
	idx := strings.Index(content, search)
	return Span{Start: idx, End: idx + len(search)}, true
}
