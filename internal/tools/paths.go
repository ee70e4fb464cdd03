package tools

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolvePath resolves path for editing. Relative paths are resolved under
// the workspace root and must not escape it; absolute paths are cleaned and
// used as-is.
func ResolvePath(workspaceRoot, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path is empty")
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	if workspaceRoot == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("invalid path: %w", err)
		}
		return abs, nil
	}

	full := filepath.Clean(filepath.Join(workspaceRoot, path))
	rel, err := filepath.Rel(workspaceRoot, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes workspace root: %s", path)
	}
	return full, nil
}
