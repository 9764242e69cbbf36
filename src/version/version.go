package version

import (
	"fmt"

	"github.com/5ht2/heartbeat/src/format"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("heartbeat %s (%s, %s)", Display(), Commit, BuildDate)
}

// Display returns the version as v<semver> when it parses, else verbatim.
func Display() string {
	if v, err := format.Version(Version); err == nil {
		return v
	}
	return Version
}
