package tools

import (
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	root := filepath.Join("/", "work", "project")

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"relative under root", "src/main.go", filepath.Join(root, "src", "main.go"), false},
		{"absolute path", "/etc/hosts", "/etc/hosts", false},
		{"dot segments cleaned", "src/../src/main.go", filepath.Join(root, "src", "main.go"), false},
		{"escape rejected", "../outside.txt", "", true},
		{"deep escape rejected", "a/../../outside.txt", "", true},
		{"empty path rejected", "", "", true},
		{"whitespace path rejected", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(root, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ResolvePath(%q) should fail", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePath(%q): %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolvePathNoRoot(t *testing.T) {
	got, err := ResolvePath("", "file.txt")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("result should be absolute, got %q", got)
	}
}
