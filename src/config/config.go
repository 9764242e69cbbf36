package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "heartbeat.yml"

// Config is the top-level Heartbeat badge configuration.
type Config struct {
	StatsFile string          `yaml:"stats_file" toml:"stats_file"`
	Badges    BadgesConfig    `yaml:"badges" toml:"badges"`
	Snowflake SnowflakeConfig `yaml:"snowflake" toml:"snowflake"`
}

// SnowflakeConfig configures ID generation.
type SnowflakeConfig struct {
	Node int `yaml:"node" toml:"node"` // 0..1023
}

// Load reads configuration from a YAML or TOML file, chosen by extension.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := Decode(path, data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, using TOML for .toml paths and YAML
// otherwise.
func Decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Badges:    DefaultBadgesConfig(),
		Snowflake: SnowflakeConfig{Node: 1},
	}
}
