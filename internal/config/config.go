// Package config handles loading configuration from .copydeskrc files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config file names, checked in order. YAML wins when both exist.
const (
	YAMLConfigFileName = ".copydeskrc.yaml"
	TOMLConfigFileName = ".copydeskrc.toml"
)

// DefaultContentDir is where posts live when the config doesn't say otherwise.
const DefaultContentDir = "src/content/posts"

// Config represents the complete configuration structure.
type Config struct {
	Content ContentConfig `yaml:"content" toml:"content"`
	Quality QualityConfig `yaml:"quality" toml:"quality"`
	SEO     SEOConfig     `yaml:"seo" toml:"seo"`
}

// ContentConfig tells the tools where to find posts.
type ContentConfig struct {
	// Dir is the content directory, relative to the config file or cwd.
	Dir string `yaml:"dir" toml:"dir"`

	// Include patterns (glob) - if set, only matching files are checked.
	// Example: "posts/**"
	Include []string `yaml:"include" toml:"include"`

	// Exclude patterns (glob) - matching files are skipped.
	// Example: "drafts/**", "**/archive/**"
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// QualityConfig tunes the content quality checks.
type QualityConfig struct {
	// MinWordCount overrides the minimum article length (0 = default).
	MinWordCount int `yaml:"min_word_count" toml:"min_word_count"`

	// BannedPhrases are checked in addition to the built-in list.
	BannedPhrases []string `yaml:"banned_phrases" toml:"banned_phrases"`

	// BannedHeadings are checked in addition to the built-in list.
	BannedHeadings []string `yaml:"banned_headings" toml:"banned_headings"`
}

// SEOConfig holds settings for the SEO audit.
type SEOConfig struct {
	// Targets are the slugs to audit. Empty means audit everything found.
	Targets []string `yaml:"targets" toml:"targets"`
}

// Load reads configuration from a .copydeskrc file in the current directory.
// Returns an empty config if no file exists (not an error).
// Returns an error only if a file exists but cannot be parsed.
func Load() (*Config, error) {
	for _, name := range []string{YAMLConfigFileName, TOMLConfigFileName} {
		if _, err := os.Stat(name); err == nil {
			return LoadFrom(name)
		}
	}
	return &Config{}, nil
}

// LoadFrom reads configuration from a specific path. The format is picked
// by extension: .toml parses as TOML, everything else as YAML.
// Returns an empty config if the file doesn't exist (not an error).
// Returns an error only if the file exists but cannot be parsed.
func LoadFrom(path string) (*Config, error) {
	// Start with empty config
	cfg := &Config{}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		// File not found is not an error - just return empty config
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// FindAndLoad searches for a config file starting from the given directory
// and walking up to parent directories until it finds one or reaches root.
// This allows project-specific configs to be found from subdirectories.
func FindAndLoad(startDir string) (*Config, error) {
	dir := startDir

	for {
		for _, name := range []string{YAMLConfigFileName, TOMLConfigFileName} {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				// Found a config file
				return LoadFrom(configPath)
			}
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, no config found
			return &Config{}, nil
		}
		dir = parent
	}
}

// ContentDir returns the configured content directory, falling back to
// the default when the config doesn't set one.
func (c *Config) ContentDir() string {
	if c.Content.Dir != "" {
		return c.Content.Dir
	}
	return DefaultContentDir
}

// IsEmpty returns true if the config has no settings defined.
func (c *Config) IsEmpty() bool {
	return c.Content.Dir == "" &&
		len(c.Content.Include) == 0 &&
		len(c.Content.Exclude) == 0 &&
		c.Quality.MinWordCount == 0 &&
		len(c.Quality.BannedPhrases) == 0 &&
		len(c.Quality.BannedHeadings) == 0 &&
		len(c.SEO.Targets) == 0
}

// Merge combines another config into this one. List settings are additive;
// scalar settings from the other config win when set.
// This is useful for merging CLI flags with file config.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Content.Dir != "" {
		c.Content.Dir = other.Content.Dir
	}
	c.Content.Include = append(c.Content.Include, other.Content.Include...)
	c.Content.Exclude = append(c.Content.Exclude, other.Content.Exclude...)
	if other.Quality.MinWordCount != 0 {
		c.Quality.MinWordCount = other.Quality.MinWordCount
	}
	c.Quality.BannedPhrases = append(c.Quality.BannedPhrases, other.Quality.BannedPhrases...)
	c.Quality.BannedHeadings = append(c.Quality.BannedHeadings, other.Quality.BannedHeadings...)
	c.SEO.Targets = append(c.SEO.Targets, other.SEO.Targets...)
}
