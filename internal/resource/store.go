// Package resource provides the external collaborators the edit tools read
// from and write to. The patch engine itself never touches a resource; it
// only transforms content between a read and a write performed here.
package resource

// Store is the narrow surface the edit tools consume: read the full text of
// an addressable resource and write replacement text back.
type Store interface {
	ReadText(id string) (string, error)
	WriteText(id, content string) error
}

// Locker is an optional Store capability. A caller that holds the lock for
// a resource across its whole read-apply-write round trip is serialized
// against other editors of the same resource. Stores without locking simply
// do not implement it.
type Locker interface {
	Lock(id string) (release func(), err error)
}
