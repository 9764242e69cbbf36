// Package output renders CLI progress and summaries for badge generation.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// BadgeResult is the outcome of rendering one badge.
type BadgeResult struct {
	Name    string
	Path    string
	Message string
	Width   float32
	Err     error
}

// Status returns "success" or "failed".
func (r BadgeResult) Status() string {
	if r.Err != nil {
		return "failed"
	}
	return "success"
}

// BadgeTable writes one row per badge inside a section and returns the
// number of failures.
func BadgeTable(sec *Section, results []BadgeResult, color bool) int {
	failed := 0
	for _, r := range results {
		icon := StatusIcon(r.Status(), color)
		if r.Err != nil {
			failed++
			sec.Row("%s %-16s %s", icon, r.Name, r.Err)
			continue
		}
		sec.Row("%s %-16s %-24s %s", icon, r.Name, Dimmed(fmt.Sprintf("%.2fpx", r.Width), color), r.Path)
	}
	return failed
}

// Warnf writes a warning line to w.
func Warnf(w io.Writer, color bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if color {
		fmt.Fprintf(w, "    \033[33mwarning:\033[0m %s\n", msg)
		return
	}
	fmt.Fprintf(w, "    warning: %s\n", msg)
}
