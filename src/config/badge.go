package config

import "path/filepath"

// BadgesConfig holds badge generation configuration.
type BadgesConfig struct {
	FontFile  string            `yaml:"font_file" toml:"font_file"`   // custom TTF/OTF (default: built-in Verdana table)
	FontSize  float64           `yaml:"font_size" toml:"font_size"`   // pixel size for font_file (default: 11)
	OutputDir string            `yaml:"output_dir" toml:"output_dir"` // default: badges
	Items     []BadgeItemConfig `yaml:"items" toml:"items"`
}

// BadgeItemConfig defines a single badge to generate.
type BadgeItemConfig struct {
	Name        string  `yaml:"name" toml:"name"`                 // unique identifier
	Label       string  `yaml:"label" toml:"label"`               // left side text
	Message     string  `yaml:"message" toml:"message"`           // right side text (supports {total_beats} etc.)
	Colour      string  `yaml:"colour" toml:"colour"`             // #RGB/#RRGGBB or a status keyword
	LabelColour string  `yaml:"label_colour" toml:"label_colour"` // #RGB/#RRGGBB
	Logo        string  `yaml:"logo" toml:"logo"`                 // image path, data URI or builtin:heart
	LogoWidth   float32 `yaml:"logo_width" toml:"logo_width"`
	Output      string  `yaml:"output" toml:"output"` // file path (default: <output_dir>/<name>.svg)
}

// OutputPath returns where the item's SVG is written.
func (i BadgeItemConfig) OutputPath(dir string) string {
	if i.Output != "" {
		return i.Output
	}
	if dir == "" {
		dir = DefaultOutputDir
	}
	return filepath.Join(dir, i.Name+".svg")
}

// DefaultOutputDir is where badges go when neither output nor output_dir is set.
const DefaultOutputDir = "badges"

// DefaultBadgesConfig returns sensible defaults for badge generation.
func DefaultBadgesConfig() BadgesConfig {
	return BadgesConfig{
		FontSize:  11,
		OutputDir: DefaultOutputDir,
	}
}
