// Package ui renders diffs, change reports, and errors for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/editkit/editkit/internal/patch"
)

// Color definitions for consistent output
var (
	addColor    = color.New(color.FgGreen)
	removeColor = color.New(color.FgRed)
	hunkColor   = color.New(color.FgCyan)
	headerColor = color.New(color.FgWhite, color.Faint)
	errorColor  = color.New(color.FgRed)
)

// Printer writes formatted tool output to a single destination.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Diff prints a unified diff with added lines green, removed lines red, and
// hunk headers cyan.
func (p *Printer) Diff(diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			headerColor.Fprintln(p.out, line)
		case strings.HasPrefix(line, "@@"):
			hunkColor.Fprintln(p.out, line)
		case strings.HasPrefix(line, "+"):
			addColor.Fprintln(p.out, line)
		case strings.HasPrefix(line, "-"):
			removeColor.Fprintln(p.out, line)
		default:
			fmt.Fprintln(p.out, line)
		}
	}
}

// Report prints a one-line change summary.
func (p *Printer) Report(path string, r patch.Report) {
	fmt.Fprintf(p.out, "%s: %d replacement(s), %d line(s) -> %d line(s)", path, r.Replacements, r.LinesBefore, r.LinesAfter)
	if r.LinesAdded > 0 {
		addColor.Fprintf(p.out, " +%d", r.LinesAdded)
	}
	if r.LinesRemoved > 0 {
		removeColor.Fprintf(p.out, " -%d", r.LinesRemoved)
	}
	fmt.Fprintln(p.out)
}

// Error prints an error in red.
func (p *Printer) Error(msg string) {
	errorColor.Fprintln(p.out, msg)
}
