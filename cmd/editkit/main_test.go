package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFailureMessageIncludesOperation(t *testing.T) {
	msg := failureMessage(map[string]any{
		"success":   false,
		"error":     "no_match",
		"operation": 1,
		"message":   "Search text not found in file.",
	})
	want := "no_match: Search text not found in file. (operation 2)"
	if msg != want {
		t.Errorf("failureMessage = %q, want %q", msg, want)
	}
}

func TestFailureMessageWithoutOperation(t *testing.T) {
	msg := failureMessage(map[string]any{"success": false})
	if msg != "edit failed" {
		t.Errorf("failureMessage = %q, want %q", msg, "edit failed")
	}
}

func TestBuildToolCallSingleEdit(t *testing.T) {
	name, args, err := buildToolCall("f.txt", "old", "new", true, "")
	if err != nil {
		t.Fatalf("buildToolCall: %v", err)
	}
	if name != "edit" {
		t.Errorf("tool = %q, want 'edit'", name)
	}
	if got := string(args); got != `{"path":"f.txt","replace":"new","replace_all":true,"search":"old"}` {
		t.Errorf("args = %s", got)
	}
}

func TestBuildToolCallBatch(t *testing.T) {
	editsFile := filepath.Join(t.TempDir(), "edits.yaml")
	content := `- search: a=1
  replace: a=10
- search: a=10
  replace: a=100
  replace_all: true
`
	if err := os.WriteFile(editsFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	name, args, err := buildToolCall("conf.ini", "", "", false, editsFile)
	if err != nil {
		t.Fatalf("buildToolCall: %v", err)
	}
	if name != "multiedit" {
		t.Errorf("tool = %q, want 'multiedit'", name)
	}
	want := `{"edits":[{"search":"a=1","replace":"a=10","replace_all":false},{"search":"a=10","replace":"a=100","replace_all":true}],"path":"conf.ini"}`
	if got := string(args); got != want {
		t.Errorf("args = %s, want %s", got, want)
	}
}
