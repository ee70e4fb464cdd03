package tools

import "github.com/editkit/editkit/internal/config"

// newTestConfig creates a minimal config for tool tests.
func newTestConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.Workspace.Root = root
	return cfg
}
