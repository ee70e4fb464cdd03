package tools

import (
	"context"
	"encoding/json"

	"github.com/editkit/editkit/internal/config"
	"github.com/editkit/editkit/internal/patch"
	"github.com/editkit/editkit/internal/resource"
)

// EditTool performs a single exact-text replacement in one file. It is the
// degenerate one-operation case of MultiEditTool and goes through the same
// engine path.
type EditTool struct {
	store resource.Store
	cfg   *config.Config
}

// NewEditTool creates a new EditTool backed by store.
func NewEditTool(store resource.Store, cfg *config.Config) *EditTool {
	return &EditTool{store: store, cfg: cfg}
}

func (t *EditTool) Name() string {
	return "edit"
}

func (t *EditTool) Description() string {
	return "Edit a file by searching for exact text and replacing it. Content-based matching - no line numbers needed."
}

func (t *EditTool) JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"path": map[string]any{
				"type":        "string",
				"description": "Path to file (relative to workspace or absolute)",
			},
			"search": map[string]any{
				"type":        "string",
				"description": "Exact text to find in the file. Must match file content character-for-character including whitespace and indentation.",
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
		"required": []string{"path", "search", "replace"},
	}
}

type editParams struct {
	Path       string `json:"path"`
	Search     string `json:"search"`
	Replace    string `json:"replace"`
	ReplaceAll bool   `json:"replace_all"`
}

func (t *EditTool) Check(ctx context.Context, args json.RawMessage) error {
	var params editParams
	if err := json.Unmarshal(args, &params); err != nil {
		return SemanticErrorf("invalid arguments: %v", err)
	}
	fullPath, err := ResolvePath(t.cfg.Workspace.Root, params.Path)
	if err != nil {
		return SemanticErrorf("invalid path: %v", err)
	}
	return checkFileSize(fullPath, t.cfg.Tools.Edit.MaxFileSizeKB)
}

func (t *EditTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var params editParams
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, SemanticErrorf("invalid arguments: %v", err)
	}

	fullPath, err := ResolvePath(t.cfg.Workspace.Root, params.Path)
	if err != nil {
		return nil, SemanticErrorf("invalid path: %v", err)
	}

	ops := []patch.EditOperation{{
		Search:     params.Search,
		Replace:    params.Replace,
		ReplaceAll: params.ReplaceAll,
	}}
	return runEdit(t.store, params.Path, fullPath, ops)
}
