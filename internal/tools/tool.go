// Package tools implements the caller-facing edit tools: thin wrappers that
// parse tool-call arguments, run the shared read-apply-write protocol
// through the patch engine, and shape results for the agent.
package tools

import (
	"context"
	"encoding/json"
)

// Tool is the interface all agent tools must implement.
type Tool interface {
	// Name returns the tool identifier (e.g., "edit", "multiedit")
	Name() string

	// Description returns a human-readable description for the LLM
	Description() string

	// JSONSchema returns the OpenAI-compatible function schema
	JSONSchema() map[string]any

	// Check performs validation before execution.
	// Returns error if the tool should not be executed
	Check(ctx context.Context, args json.RawMessage) error

	// Call executes the tool with the given arguments.
	// Check should be called before Call
	Call(ctx context.Context, args json.RawMessage) (any, error)
}
