package tools

import (
	"encoding/json"
	"fmt"
)

// ToolErrorType classifies tool errors for the dispatching agent.
type ToolErrorType int

const (
	// ToolErrorRuntime - the tool executed but failed (file missing,
	// permission denied, write failure). The error goes to history so the
	// LLM can see and handle it.
	ToolErrorRuntime ToolErrorType = iota

	// ToolErrorSemantic - the LLM misused the tool (malformed arguments,
	// no-op edit). The caller may discard and retry.
	ToolErrorSemantic
)

// ToolError is an error type that classifies errors as runtime or semantic.
type ToolError struct {
	Type    ToolErrorType
	Message string
	Details map[string]any // Optional structured data for the LLM
}

func (e *ToolError) Error() string {
	return e.Message
}

// ToJSON returns the structured representation of the error.
func (e *ToolError) ToJSON() map[string]any {
	result := map[string]any{
		"success": false,
		"error":   e.Message,
	}
	for k, v := range e.Details {
		result[k] = v
	}
	return result
}

// RuntimeErrorf creates a formatted runtime error.
func RuntimeErrorf(format string, args ...any) *ToolError {
	return &ToolError{Type: ToolErrorRuntime, Message: fmt.Sprintf(format, args...)}
}

// SemanticError creates a semantic error.
func SemanticError(msg string) *ToolError {
	return &ToolError{Type: ToolErrorSemantic, Message: msg}
}

// SemanticErrorf creates a formatted semantic error.
func SemanticErrorf(format string, args ...any) *ToolError {
	return &ToolError{Type: ToolErrorSemantic, Message: fmt.Sprintf(format, args...)}
}

// FormatError returns JSON for errors carrying structured details, plain
// text otherwise.
func FormatError(err error) string {
	if te, ok := err.(*ToolError); ok && len(te.Details) > 0 {
		jsonBytes, marshalErr := json.MarshalIndent(te.ToJSON(), "", "  ")
		if marshalErr == nil {
			return string(jsonBytes)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
