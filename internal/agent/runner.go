package agent

import (
	"context"
	"encoding/json"
	"time"

	"github.com/editkit/editkit/internal/tools"
)

// Runner dispatches tool calls against a registry, timing and logging each
// execution.
type Runner struct {
	registry *tools.Registry
	logger   *Logger
}

// NewRunner creates a Runner over registry. logger may not be nil; use a
// disabled Logger to suppress output.
func NewRunner(registry *tools.Registry, logger *Logger) *Runner {
	return &Runner{registry: registry, logger: logger}
}

// Dispatch runs the named tool: Check first, then Call. The result map or
// the structured error is returned exactly as the tool produced it.
func (r *Runner) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	tool := r.registry.Get(name)
	if tool == nil {
		return nil, tools.SemanticErrorf("unknown tool: %s", name)
	}

	if err := tool.Check(ctx, args); err != nil {
		r.logger.ToolExecuted(name, 0, false, err)
		return nil, err
	}

	start := time.Now()
	result, err := tool.Call(ctx, args)
	r.logger.ToolExecuted(name, time.Since(start), err == nil, err)
	return result, err
}
