package patch

import "strings"

// Report summarizes an applied patch for presentation. LinesAdded and
// LinesRemoved are net line-count deltas clamped at zero, not a line-level
// diff: an edit that rewrites interior lines without changing the total
// reports zero in both directions. Kept that way for compatibility with the
// tool output format.
type Report struct {
	LinesBefore  int
	LinesAfter   int
	LinesAdded   int
	LinesRemoved int
	Replacements int
}

// Summarize derives a Report from the before/after snapshots and the
// per-operation replacement counts. It always succeeds.
func Summarize(initial, final string, replacementCounts []int) Report {
	before := len(strings.Split(initial, "\n"))
	after := len(strings.Split(final, "\n"))

	r := Report{LinesBefore: before, LinesAfter: after}
	if after > before {
		r.LinesAdded = after - before
	}
	if before > after {
		r.LinesRemoved = before - after
	}
	for _, n := range replacementCounts {
		r.Replacements += n
	}
	return r
}
