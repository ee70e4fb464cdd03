// Package patch implements the atomic text-patch engine behind the edit
// tools: an ordered list of literal find/replace operations is applied to an
// in-memory content snapshot as a single all-or-nothing transaction.
package patch

import "strings"

// EditOperation is a single requested find/replace change. It is constructed
// once from caller input and never mutated afterwards, so validation and
// execution always observe the same committed values.
type EditOperation struct {
	Search     string
	Replace    string
	ReplaceAll bool
}

// ValidateOps checks the well-formedness of an operation list before any
// matching occurs. Validation is independent of content and of the other
// operations in the list; the first malformed operation aborts the whole
// list with a *ValidationError.
func ValidateOps(ops []EditOperation) error {
	if len(ops) == 0 {
		return &ValidationError{Index: -1, Reason: "operation list is empty - nothing to do"}
	}
	for i, op := range ops {
		if strings.TrimSpace(op.Search) == "" {
			return &ValidationError{Index: i, Reason: "search text is empty or whitespace-only"}
		}
		if op.Search == op.Replace {
			return &ValidationError{Index: i, Reason: "search and replace text are identical - no change would be made"}
		}
	}
	return nil
}
