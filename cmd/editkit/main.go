package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/editkit/editkit/internal/agent"
	"github.com/editkit/editkit/internal/config"
	"github.com/editkit/editkit/internal/patch"
	"github.com/editkit/editkit/internal/resource"
	"github.com/editkit/editkit/internal/tools"
	"github.com/editkit/editkit/internal/ui"
)

// Version info set by ldflags at build time
var (
	version    = "dev"
	commitHash = "dev"
)

// editSpec is one entry of a -edits YAML batch file.
type editSpec struct {
	Search     string `yaml:"search" json:"search"`
	Replace    string `yaml:"replace" json:"replace"`
	ReplaceAll bool   `yaml:"replace_all" json:"replace_all"`
}

// dryRunStore computes edits without persisting them. Embedding drops the
// Locker capability too, which is fine: nothing is written.
type dryRunStore struct {
	resource.Store
}

func (dryRunStore) WriteText(id, content string) error { return nil }

func main() {
	configPath := flag.String("config", "editkit.yaml", "path to config file")
	logFile := flag.String("log", "", "log file path (overrides config, empty keeps config value)")
	path := flag.String("path", "", "file to edit")
	search := flag.String("search", "", "exact text to find")
	replace := flag.String("replace", "", "replacement text (empty deletes the match)")
	all := flag.Bool("all", false, "replace every occurrence instead of requiring a unique match")
	editsFile := flag.String("edits", "", "YAML file with an ordered list of edits, applied all-or-nothing")
	dryRun := flag.Bool("dry-run", false, "compute and print the edit without writing the file")
	showVersion := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s-%s\n", version, commitHash)
		return
	}

	if *path == "" {
		log.Fatal("-path is required")
	}
	if *editsFile == "" && *search == "" {
		log.Fatal("either -search or -edits is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logFile != "" {
		cfg.Log.Path = *logFile
	}

	logger, err := agent.NewLogger(cfg.Log.Path, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	fileStore := resource.NewFileStore()
	fileStore.LockTimeout = time.Duration(cfg.Tools.Edit.LockTimeoutMS) * time.Millisecond

	var store resource.Store = fileStore
	if *dryRun {
		store = dryRunStore{Store: fileStore}
	}

	registry := tools.NewRegistry()
	registry.Enable(tools.NewEditTool(store, cfg))
	registry.Enable(tools.NewMultiEditTool(store, cfg))
	runner := agent.NewRunner(registry, logger)

	toolName, args, err := buildToolCall(*path, *search, *replace, *all, *editsFile)
	if err != nil {
		log.Fatalf("Failed to build tool call: %v", err)
	}

	printer := ui.NewPrinter(os.Stdout)
	result, err := runner.Dispatch(context.Background(), toolName, args)
	if err != nil {
		printer.Error(tools.FormatError(err))
		os.Exit(1)
	}

	resultMap, ok := result.(map[string]any)
	if !ok || resultMap["success"] != true {
		printFailure(printer, resultMap)
		os.Exit(1)
	}

	if diff, ok := resultMap["diff"].(string); ok && diff != "" {
		printer.Diff(diff)
	}
	printer.Report(*path, reportFromResult(resultMap))
	if *dryRun {
		fmt.Println("(dry run - file not written)")
	} else {
		logger.EditApplied(*path, intValue(resultMap, "replacements"),
			intValue(resultMap, "lines_added"), intValue(resultMap, "lines_removed"))
	}
}

// buildToolCall shapes the CLI flags into a tool call: a one-edit "edit"
// call, or a "multiedit" call from the YAML batch file.
func buildToolCall(path, search, replace string, all bool, editsFile string) (string, json.RawMessage, error) {
	if editsFile == "" {
		args, err := json.Marshal(map[string]any{
			"path":        path,
			"search":      search,
			"replace":     replace,
			"replace_all": all,
		})
		return "edit", args, err
	}

	data, err := os.ReadFile(editsFile)
	if err != nil {
		return "", nil, err
	}
	var edits []editSpec
	if err := yaml.Unmarshal(data, &edits); err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", editsFile, err)
	}

	args, err := json.Marshal(map[string]any{
		"path":  path,
		"edits": edits,
	})
	return "multiedit", args, err
}

func printFailure(printer *ui.Printer, resultMap map[string]any) {
	printer.Error(failureMessage(resultMap))
	if hint, ok := resultMap["hint"].(string); ok {
		fmt.Println(hint)
	}
}

// failureMessage formats a structured failure result as kind, message, and
// the failing operation (1-based, as in engine error messages) so a batch
// user can tell which edit failed.
func failureMessage(resultMap map[string]any) string {
	msg, _ := resultMap["message"].(string)
	if msg == "" {
		msg = "edit failed"
	}
	if kind, ok := resultMap["error"].(string); ok {
		msg = fmt.Sprintf("%s: %s", kind, msg)
	}
	if op, ok := resultMap["operation"].(int); ok {
		msg = fmt.Sprintf("%s (operation %d)", msg, op+1)
	}
	return msg
}

func reportFromResult(resultMap map[string]any) patch.Report {
	return patch.Report{
		LinesBefore:  intValue(resultMap, "lines_before"),
		LinesAfter:   intValue(resultMap, "lines_after"),
		LinesAdded:   intValue(resultMap, "lines_added"),
		LinesRemoved: intValue(resultMap, "lines_removed"),
		Replacements: intValue(resultMap, "replacements"),
	}
}

func intValue(m map[string]any, key string) int {
	if n, ok := m[key].(int); ok {
		return n
	}
	return 0
}
