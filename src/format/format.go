// Package format renders numbers, durations and versions for badge messages.
package format

import (
	"fmt"
	"time"

	"github.com/5ht2/heartbeat/src/humantime"
	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Count groups the digits of n in threes: 12345 becomes "12,345".
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Relative renders d precisely in the present tense, or "just now" when it
// is under a second.
func Relative(d time.Duration) string {
	if d/time.Second == 0 {
		return "just now"
	}
	return humantime.Duration(d).Text(humantime.Precise, humantime.Present)
}

// Version normalises a semantic version to v<major>.<minor>.<patch>[-pre][+meta].
func Version(s string) (string, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return "", fmt.Errorf("parsing version %q: %w", s, err)
	}
	return "v" + v.String(), nil
}
