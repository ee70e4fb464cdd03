package resource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockPollInterval is the interval to sleep while polling for a file lock.
const lockPollInterval = 10 * time.Millisecond

// FileStore is a Store backed by the local filesystem. Writes are atomic
// (temp file + rename) and Lock takes a per-file advisory flock, so
// concurrent editors of the same file are serialized across the caller's
// read-apply-write round trip.
type FileStore struct {
	// LockTimeout bounds how long Lock waits for a contended file.
	LockTimeout time.Duration
}

// NewFileStore creates a FileStore with the default lock timeout.
func NewFileStore() *FileStore {
	return &FileStore{LockTimeout: 5 * time.Second}
}

// ReadText reads the full content of the file at id.
func (s *FileStore) ReadText(id string) (string, error) {
	data, err := os.ReadFile(id)
	if err != nil {
		return "", &Error{Resource: id, Op: "read", Err: err}
	}
	return string(data), nil
}

// WriteText writes content atomically: temp file in the target directory,
// then rename over the destination. The original file mode is preserved
// when the file already exists; parent directories are created when not.
func (s *FileStore) WriteText(id, content string) error {
	dir := filepath.Dir(id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &Error{Resource: id, Op: "write", Err: fmt.Errorf("create parent directory: %w", err)}
	}

	tempFile, err := os.CreateTemp(dir, ".edit-*.tmp")
	if err != nil {
		return &Error{Resource: id, Op: "write", Err: fmt.Errorf("create temp file: %w", err)}
	}
	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // no-op after a successful rename

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		return &Error{Resource: id, Op: "write", Err: fmt.Errorf("write temp file: %w", err)}
	}
	if err := tempFile.Close(); err != nil {
		return &Error{Resource: id, Op: "write", Err: fmt.Errorf("close temp file: %w", err)}
	}

	if info, statErr := os.Stat(id); statErr == nil {
		_ = os.Chmod(tempPath, info.Mode())
	} else {
		_ = os.Chmod(tempPath, 0644)
	}

	if err := os.Rename(tempPath, id); err != nil {
		return &Error{Resource: id, Op: "write", Err: fmt.Errorf("atomic rename: %w", err)}
	}
	return nil
}

// Lock acquires an exclusive advisory lock for id, polling until
// LockTimeout elapses. The returned release func must be called exactly
// once, after the round trip completes.
func (s *FileStore) Lock(id string) (release func(), err error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.LockTimeout)
	defer cancel()

	lockPath := id + ".lock"
	fl := flock.New(lockPath)
	locked, err := fl.TryLockContext(ctx, lockPollInterval)
	if err != nil {
		return nil, &Error{Resource: id, Op: "lock", Err: err}
	}
	if !locked {
		return nil, &Error{Resource: id, Op: "lock", Err: fmt.Errorf("timeout after %s", s.LockTimeout)}
	}

	// The lock file is left in place after unlock. Removing it would race
	// with waiters still polling an fd on the old inode: they could acquire
	// the unlinked file while a fresh Lock call locks its replacement,
	// leaving two editors holding the lock at once.
	return func() {
		_ = fl.Unlock()
	}, nil
}
