package tools

import "sort"

// ToolSpec is the OpenAI-compatible function declaration for one tool.
type ToolSpec struct {
	Type     string `json:"type"`
	Function struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
	} `json:"function"`
}

// Registry manages enabled tools
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Enable adds a tool to the registry (makes it available for use)
func (r *Registry) Enable(t Tool) {
	r.tools[t.Name()] = t
}

// Get retrieves a tool by name
func (r *Registry) Get(name string) Tool {
	return r.tools[name]
}

// Specs returns function specs for all registered tools, sorted by name for
// deterministic ordering.
func (r *Registry) Specs() []ToolSpec {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]ToolSpec, 0, len(names))
	for _, name := range names {
		tool := r.tools[name]
		spec := ToolSpec{Type: "function"}
		spec.Function.Name = tool.Name()
		spec.Function.Description = tool.Description()
		spec.Function.Parameters = tool.JSONSchema()
		specs = append(specs, spec)
	}

	return specs
}

// All returns all registered tools
func (r *Registry) All() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	return tools
}
