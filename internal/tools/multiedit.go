package tools

import (
	"context"
	"encoding/json"

	"github.com/editkit/editkit/internal/config"
	"github.com/editkit/editkit/internal/patch"
	"github.com/editkit/editkit/internal/resource"
)

// MultiEditTool applies an ordered list of exact-text replacements to one
// file as a single transaction. Each edit runs against the output of the
// previous one; if any edit fails, the file is left untouched.
type MultiEditTool struct {
	store resource.Store
	cfg   *config.Config
}

// NewMultiEditTool creates a new MultiEditTool backed by store.
func NewMultiEditTool(store resource.Store, cfg *config.Config) *MultiEditTool {
	return &MultiEditTool{store: store, cfg: cfg}
}

func (t *MultiEditTool) Name() string {
	return "multiedit"
}

func (t *MultiEditTool) Description() string {
	return "Apply multiple search/replace edits to one file in order, all-or-nothing. Later edits see the result of earlier ones."
}

func (t *MultiEditTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Path to file (relative to workspace or absolute)",
			},
			"edits": map[string]any{
				"type":        "array",
				"description": "Ordered list of edits. If any edit fails, none are applied.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"search": map[string]any{
							"type":        "string",
							"description": "Exact text to find. Matched against the file as modified by earlier edits in the list.",
						},
						"replace": map[string]any{
							"type":        "string",
							"description": "Text to replace the search match with. Use empty string to delete the matched content.",
						},
						"replace_all": map[string]any{
							"type":        "boolean",
							"description": "Replace every occurrence instead of requiring a unique match (default: false).",
						},
					},
					"required": []string{"search", "replace"},
				},
			},
		},
		"required": []string{"path", "edits"},
	}
}

type multiEditParams struct {
	Path  string `json:"path"`
	Edits []struct {
		Search     string `json:"search"`
		Replace    string `json:"replace"`
		ReplaceAll bool   `json:"replace_all"`
	} `json:"edits"`
}

func (t *MultiEditTool) Check(ctx context.Context, args json.RawMessage) error {
	var params multiEditParams
	if err := json.Unmarshal(args, &params); err != nil {
		return SemanticErrorf("invalid arguments: %v", err)
	}
	fullPath, err := ResolvePath(t.cfg.Workspace.Root, params.Path)
	if err != nil {
		return SemanticErrorf("invalid path: %v", err)
	}
	return checkFileSize(fullPath, t.cfg.Tools.Edit.MaxFileSizeKB)
}

func (t *MultiEditTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var params multiEditParams
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}

	fullPath, err := ResolvePath(t.cfg.Workspace.Root, params.Path)
	if err != nil {
		return nil, SemanticErrorf("invalid path: %v", err)
	}

	ops := make([]patch.EditOperation, 0, len(params.Edits))
	for _, e := range params.Edits {
		ops = append(ops, patch.EditOperation{
			Search:     e.Search,
			Replace:    e.Replace,
			ReplaceAll: e.ReplaceAll,
		})
	}
	return runEdit(t.store, params.Path, fullPath, ops)
}
