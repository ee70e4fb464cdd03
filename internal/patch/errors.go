package patch

import "fmt"

// ValidationError reports a malformed operation, detected before any content
// is touched. Index is the 0-based position of the offending operation, or
// -1 when the list as a whole is invalid.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return e.Reason
	}
	return fmt.Sprintf("operation %d: %s", e.Index+1, e.Reason)
}

// NotFoundError reports that an operation's search text has zero occurrences
// in the content as of that point in the sequence. Earlier operations may
// already have changed the text, so this can refer to intermediate content
// rather than the original snapshot.
type NotFoundError struct {
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("operation %d: search text not found", e.Index+1)
}

// AmbiguousMatchError reports that a non-replace-all operation matched more
// than once. The caller must supply more surrounding context or set
// ReplaceAll.
type AmbiguousMatchError struct {
	Index int
	Count int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("operation %d: search text matches %d locations - add more surrounding context to make it unique", e.Index+1, e.Count)
}
