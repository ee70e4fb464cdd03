package patch

import "strings"

// Result is the outcome of a fully successful apply: the final content
// snapshot and the number of replacements each operation performed, in
// operation order.
type Result struct {
	FinalContent      string
	ReplacementCounts []int
}

// Apply folds the operation list over initial, threading each operation's
// output into the next one's input. All-or-nothing: if any operation fails,
// the returned error identifies its index and kind, no content is returned,
// and the caller must treat initial as authoritative and write nothing.
//
// Apply holds no state between calls and performs no I/O; concurrent calls
// on independent inputs are safe.
func Apply(initial string, ops []EditOperation) (*Result, error) {
	if err := ValidateOps(ops); err != nil {
		return nil, err
	}

	current := initial
	counts := make([]int, 0, len(ops))
	for i, op := range ops {
		// Subsequent operations match against the already-modified
		// content, never against the original snapshot.
		next, n, err := applyOne(current, op, i)
		if err != nil {
			return nil, err
		}
		current = next
		counts = append(counts, n)
	}

	return &Result{FinalContent: current, ReplacementCounts: counts}, nil
}

// applyOne evaluates one operation against the current snapshot and returns
// the next snapshot plus the number of replacements made.
func applyOne(current string, op EditOperation, index int) (string, int, error) {
	n := CountOccurrences(current, op.Search)
	if n == 0 {
		return "", 0, &NotFoundError{Index: index}
	}

	if op.ReplaceAll {
		// strings.Replace performs the same consuming left-to-right scan
		// the counter uses, so exactly n spans are replaced.
		return strings.Replace(current, op.Search, op.Replace, n), n, nil
	}

	if n > 1 {
		return "", 0, &AmbiguousMatchError{Index: index, Count: n}
	}
	span, _ := LocateUnique(current, op.Search)
	return current[:span.Start] + op.Replace + current[span.End:], 1, nil
}
