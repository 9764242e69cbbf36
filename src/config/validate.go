package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/5ht2/heartbeat/src/badge"
)

// ErrInvalid wraps every hard validation failure.
var ErrInvalid = errors.New("invalid config")

// statusColours are accepted in place of hex colours and resolved with
// badge.StatusColor.
var statusColours = map[string]bool{
	"passed": true, "success": true, "warning": true, "critical": true, "failed": true,
}

// statsKeys are message placeholders that need a stats snapshot.
var statsKeys = []string{
	"{last_seen}", "{last_seen_precise}", "{total_beats}", "{total_visits}", "{longest_absence}", "{devices}",
}

// identifierRe matches valid badge names: letter-first, alphanumeric + _ . -
var identifierRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.\-]*$`)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Snowflake ─────────────────────────────────────────────────────────

	if cfg.Snowflake.Node < 0 || cfg.Snowflake.Node > 1023 {
		errs = append(errs, fmt.Sprintf("snowflake.node: must be within 0..1023, got %d", cfg.Snowflake.Node))
	}

	// ── Badges ────────────────────────────────────────────────────────────

	if cfg.Badges.FontSize < 0 {
		errs = append(errs, fmt.Sprintf("badges.font_size: must not be negative, got %g", cfg.Badges.FontSize))
	}

	names := make(map[string]bool)
	for i, item := range cfg.Badges.Items {
		path := fmt.Sprintf("badges.items[%d]", i)

		switch {
		case item.Name == "":
			errs = append(errs, fmt.Sprintf("%s: name is required", path))
		case !identifierRe.MatchString(item.Name):
			errs = append(errs, fmt.Sprintf("%s: name %q is not a valid identifier (must match [a-zA-Z][a-zA-Z0-9_.\\-]*)", path, item.Name))
		case names[item.Name]:
			errs = append(errs, fmt.Sprintf("%s: duplicate badge name %q", path, item.Name))
		default:
			names[item.Name] = true
		}

		if item.Colour != "" && !statusColours[item.Colour] {
			if _, err := badge.ParseColour(item.Colour); err != nil {
				errs = append(errs, fmt.Sprintf("%s: colour: %v", path, err))
			}
		}
		if item.LabelColour != "" {
			if _, err := badge.ParseColour(item.LabelColour); err != nil {
				errs = append(errs, fmt.Sprintf("%s: label_colour: %v", path, err))
			}
		}
		if item.LogoWidth < 0 {
			errs = append(errs, fmt.Sprintf("%s: logo_width must not be negative, got %g", path, item.LogoWidth))
		}
		if item.LogoWidth > 0 && item.Logo == "" {
			warnings = append(warnings, fmt.Sprintf("%s: logo_width is set without a logo", path))
		}
		if item.Message == "" {
			warnings = append(warnings, fmt.Sprintf("%s: message is empty", path))
		}
		if cfg.StatsFile == "" && usesStats(item.Message) {
			warnings = append(warnings, fmt.Sprintf("%s: message uses stats placeholders but stats_file is not set", path))
		}
		if item.Output != "" {
			errs = append(errs, validateOutputPath(item.Output, path)...)
		}
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(errs, "\n  "))
	}
	return warnings, nil
}

func usesStats(message string) bool {
	for _, k := range statsKeys {
		if strings.Contains(message, k) {
			return true
		}
	}
	return false
}

func validateOutputPath(p string, itemPath string) []string {
	var errs []string

	// Absolute path
	if filepath.IsAbs(p) {
		errs = append(errs, fmt.Sprintf("%s: output path %q must be relative, not absolute", itemPath, p))
		return errs
	}

	// Tilde
	if strings.HasPrefix(p, "~") {
		errs = append(errs, fmt.Sprintf("%s: output path %q must not start with ~", itemPath, p))
		return errs
	}

	// Path traversal
	if strings.Contains(p, "..") {
		errs = append(errs, fmt.Sprintf("%s: output path %q must not contain '..'", itemPath, p))
		return errs
	}

	if filepath.Ext(p) != ".svg" {
		errs = append(errs, fmt.Sprintf("%s: output path %q must end in .svg", itemPath, p))
	}
	return errs
}
