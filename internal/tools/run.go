package tools

import (
	"errors"
	"fmt"
	"os"

	"github.com/editkit/editkit/internal/patch"
	"github.com/editkit/editkit/internal/resource"
)

// checkFileSize rejects editing files larger than the configured limit,
// before any content is loaded. Missing files pass; they surface as read
// errors later.
func checkFileSize(fullPath string, maxKB int) error {
	if maxKB <= 0 {
		return nil
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil
	}
	if info.Size() > int64(maxKB)*1024 {
		return SemanticErrorf("file is %d KB, larger than the %d KB edit limit", info.Size()/1024, maxKB)
	}
	return nil
}

// runEdit executes the shared protocol for both edit tools: read the
// resource, apply the full operation list through the patch engine, and
// write back only if every operation succeeded. On any engine failure the
// resource is never written, so the persisted content stays exactly the
// original. When the store supports locking, the whole round trip holds the
// per-resource lock.
func runEdit(store resource.Store, path, fullPath string, ops []patch.EditOperation) (any, error) {
	if locker, ok := store.(resource.Locker); ok {
		release, err := locker.Lock(fullPath)
		if err != nil {
			return nil, RuntimeErrorf("lock %s: %v", path, err)
		}
		defer release()
	}

	content, err := store.ReadText(fullPath)
	if err != nil {
		return nil, RuntimeErrorf("%v", err)
	}

	res, err := patch.Apply(content, ops)
	if err != nil {
		return editFailure(path, err)
	}

	if err := store.WriteText(fullPath, res.FinalContent); err != nil {
		// The apply succeeded but persistence failed: in-memory and
		// on-disk state now diverge, which the caller must see as a
		// distinct failure mode.
		return nil, RuntimeErrorf("edits computed but not persisted: %v", err)
	}

	report := patch.Summarize(content, res.FinalContent, res.ReplacementCounts)
	diff, err := generateUnifiedDiff(content, res.FinalContent, path)
	if err != nil {
		return nil, fmt.Errorf("generate diff: %w", err)
	}

	return buildEditSuccess(path, diff, report), nil
}

// editFailure maps engine errors to the structured tool results the agent
// expects. Validation failures are the LLM's mistake; match failures come
// back as result maps with a hint so the LLM can disambiguate and retry.
func editFailure(path string, err error) (any, error) {
	var vErr *patch.ValidationError
	var nfErr *patch.NotFoundError
	var amErr *patch.AmbiguousMatchError

	switch {
	case errors.As(err, &vErr):
		return nil, SemanticError(vErr.Error())
	case errors.As(err, &nfErr):
		return map[string]any{
			"success":   false,
			"error":     "no_match",
			"path":      path,
			"operation": nfErr.Index,
			"message":   "Search text not found in file. The search text must exactly match the file content.",
			"hint":      "Use read to see the exact file content, then copy the text you want to replace.",
		}, nil
	case errors.As(err, &amErr):
		return map[string]any{
			"success":   false,
			"error":     "multiple_matches",
			"path":      path,
			"operation": amErr.Index,
			"count":     amErr.Count,
			"message":   fmt.Sprintf("Search text matches %d locations - add more surrounding context to make it unique, or set replace_all", amErr.Count),
		}, nil
	default:
		return nil, err
	}
}

// buildEditSuccess builds the standard success result for an edit. This is
// the single place where the success response format is defined.
func buildEditSuccess(path, diff string, report patch.Report) map[string]any {
	return map[string]any{
		"success":       true,
		"path":          path,
		"diff":          diff,
		"replacements":  report.Replacements,
		"lines_before":  report.LinesBefore,
		"lines_after":   report.LinesAfter,
		"lines_added":   report.LinesAdded,
		"lines_removed": report.LinesRemoved,
		"message":       "Edit applied successfully",
	}
}
