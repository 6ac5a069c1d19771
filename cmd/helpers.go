package cmd

import (
	"fmt"
	"os"

	"github.com/copydesk/copydesk/internal/config"
	"github.com/copydesk/copydesk/internal/quality"
	"github.com/copydesk/copydesk/internal/scanner"
)

// LoadedConfig wraps a loaded configuration and provides helper methods
// for getting effective values that respect CLI overrides.
type LoadedConfig struct {
	cfg      *config.Config
	noConfig bool
}

// LoadConfig loads the nearest .copydeskrc file unless noConfig is true.
// Returns an error if a config file exists but is invalid.
func LoadConfig(noConfig bool) (*LoadedConfig, error) {
	if noConfig {
		return &LoadedConfig{cfg: &config.Config{}, noConfig: true}, nil
	}

	cfg, err := config.FindAndLoad(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &LoadedConfig{cfg: cfg, noConfig: false}, nil
}

// Config returns the underlying config for direct access.
func (lc *LoadedConfig) Config() *config.Config {
	return lc.cfg
}

// GetContentDir returns the effective content directory.
// A CLI path argument overrides config; config overrides the default.
func (lc *LoadedConfig) GetContentDir(cliPath string) string {
	if cliPath != "" {
		return cliPath
	}
	return lc.cfg.ContentDir()
}

// GetMinWordCount returns the effective minimum word count.
// CLI overrides config if set.
func (lc *LoadedConfig) GetMinWordCount(cliValue int) int {
	if cliValue > 0 {
		return cliValue
	}
	return lc.cfg.Quality.MinWordCount
}

// GetSEOTargets returns the effective SEO target list.
// CLI args override config targets.
func (lc *LoadedConfig) GetSEOTargets(cliTargets []string) []string {
	if len(cliTargets) > 0 {
		return cliTargets
	}
	return lc.cfg.SEO.Targets
}

// BuildQualityOptions creates quality.Options from config and CLI values.
// CLI phrase and heading lists are merged additively with config.
func (lc *LoadedConfig) BuildQualityOptions(cliMinWords int, cliPhrases, cliHeadings []string) quality.Options {
	opts := quality.DefaultOptions().
		WithMinWordCount(lc.GetMinWordCount(cliMinWords)).
		WithExtraPhrases(lc.cfg.Quality.BannedPhrases).
		WithExtraHeadings(lc.cfg.Quality.BannedHeadings)

	return opts.
		WithExtraPhrases(cliPhrases).
		WithExtraHeadings(cliHeadings)
}

// BuildScanOptions creates scanner.ScanOptions from config and CLI patterns.
// CLI include/exclude patterns are merged additively with config.
func (lc *LoadedConfig) BuildScanOptions(root string, cliInclude, cliExclude []string) scanner.ScanOptions {
	include := append([]string{}, lc.cfg.Content.Include...)
	include = append(include, cliInclude...)

	exclude := append([]string{}, lc.cfg.Content.Exclude...)
	exclude = append(exclude, cliExclude...)

	return scanner.ScanOptions{
		Root:    root,
		Include: include,
		Exclude: exclude,
	}
}

// exitOnError prints an error message and exits if err is not nil.
func exitOnError(err error, message string) {
	if err != nil {
		if message != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// getPathArg returns the path argument or "" when absent.
func getPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
