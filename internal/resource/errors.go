package resource

import "fmt"

// Error wraps a read, write, or lock failure with the resource it concerns.
// It is surfaced to callers unchanged; the patch engine never generates one.
// Op distinguishes a read failure (nothing was matched yet) from a write
// failure (edits were computed but not persisted).
type Error struct {
	Resource string
	Op       string // "read", "write", or "lock"
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
