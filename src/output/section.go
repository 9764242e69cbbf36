package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// frameWidth is the number of rule characters after the corner glyph.
const frameWidth = 61

// Section is a framed block of rows with a titled header rule.
type Section struct {
	w     io.Writer
	color bool
}

// NewSection writes the header rule for title and returns the section.
// A non-zero elapsed is shown at the right end of the rule.
func NewSection(w io.Writer, title string, elapsed time.Duration, color bool) *Section {
	left := "── " + title + " "
	right := "──"
	if elapsed > 0 {
		right = " " + formatElapsed(elapsed) + " ──"
	}
	rule := left + strings.Repeat("─", max(1, frameWidth+4-runeLen(left)-runeLen(right))) + right
	if color {
		rule = "\033[2;36m" + rule + "\033[0m"
	}
	fmt.Fprintf(w, "\n    %s\n", rule)
	return &Section{w: w, color: color}
}

func runeLen(s string) int { return len([]rune(s)) }

// Row writes one framed line.
func (s *Section) Row(format string, args ...any) {
	fmt.Fprintf(s.w, "    │ %s\n", fmt.Sprintf(format, args...))
}

// Separator writes a divider between the rows and the total.
func (s *Section) Separator() { s.rule('├') }

// Close writes the footer rule.
func (s *Section) Close() { s.rule('└') }

func (s *Section) rule(corner rune) {
	fmt.Fprintf(s.w, "    %c%s\n", corner, strings.Repeat("─", frameWidth))
}

// Total writes the summary row: the badge count, elapsed time and status.
func (s *Section) Total(count int, elapsed time.Duration, status string) {
	s.Row("%-12s%-28s%12s   %s", "total", fmt.Sprintf("%d badges", count), formatElapsed(elapsed), StatusIcon(status, s.color))
}

var icons = map[string][2]string{
	"success": {"✓", "\033[32m✓\033[0m"},
	"failed":  {"✗", "\033[31m✗\033[0m"},
}

// StatusIcon returns the glyph for a badge status, ANSI coloured if color
// is set. Unknown statuses render as skipped.
func StatusIcon(status string, color bool) string {
	icon, ok := icons[status]
	if !ok {
		icon = [2]string{"⊘", "\033[33m⊘\033[0m"}
	}
	if color {
		return icon[1]
	}
	return icon[0]
}

// Dimmed greys out text when color is set.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return "\033[90m" + text + "\033[0m"
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), (d % time.Minute).Seconds())
}
