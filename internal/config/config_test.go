package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tools.Edit.MaxFileSizeKB != 1024 {
		t.Errorf("MaxFileSizeKB = %d, want 1024", cfg.Tools.Edit.MaxFileSizeKB)
	}
	if cfg.Tools.Edit.LockTimeoutMS != 5000 {
		t.Errorf("LockTimeoutMS = %d, want 5000", cfg.Tools.Edit.LockTimeoutMS)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `workspace:
  root: .
tools:
  edit:
    max_file_size_kb: 256
    lock_timeout_ms: 100
log:
  path: editkit.log
  development: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !filepath.IsAbs(cfg.Workspace.Root) {
		t.Errorf("workspace root should be absolute, got %q", cfg.Workspace.Root)
	}
	if cfg.Tools.Edit.MaxFileSizeKB != 256 {
		t.Errorf("MaxFileSizeKB = %d, want 256", cfg.Tools.Edit.MaxFileSizeKB)
	}
	if cfg.Tools.Edit.LockTimeoutMS != 100 {
		t.Errorf("LockTimeoutMS = %d, want 100", cfg.Tools.Edit.LockTimeoutMS)
	}
	if cfg.Log.Path != "editkit.log" {
		t.Errorf("Log.Path = %q, want %q", cfg.Log.Path, "editkit.log")
	}
	if !cfg.Log.Development {
		t.Error("Log.Development should be true")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workspace: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadZeroValuesGetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workspace:\n  root: .\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tools.Edit.MaxFileSizeKB != 1024 {
		t.Errorf("MaxFileSizeKB = %d, want default 1024", cfg.Tools.Edit.MaxFileSizeKB)
	}
}
