package tools

import "github.com/pmezard/go-difflib/difflib"

// generateUnifiedDiff generates a unified diff between old and new content
func generateUnifiedDiff(oldContent, newContent, filename string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: filename,
		ToFile:   filename,
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}
