// Package report provides formatting and file writing for validation reports.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/copydesk/copydesk/internal/quality"
	"github.com/copydesk/copydesk/internal/seo"
)

// Format represents an output format type.
type Format string

const (
	// FormatJSON outputs as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML.
	FormatYAML Format = "yaml"
	// FormatJUnit outputs as JUnit XML for CI/CD integration.
	FormatJUnit Format = "junit"
	// FormatMarkdown outputs as a Markdown report.
	FormatMarkdown Format = "markdown"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatJUnit),
		string(FormatMarkdown),
	}
}

// IsValidFormat checks if a format string is valid.
func IsValidFormat(s string) bool {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, FormatYAML, FormatJUnit, FormatMarkdown:
		return true
	default:
		return false
	}
}

// FileResult holds the outcome of validating a single file.
type FileResult struct {
	File     string
	Passed   bool
	Issues   []string
	Warnings []string

	// Content metrics
	WordCount     int
	H2Count       int
	H3Count       int
	ExcerptLength int

	// SEO metrics (set only for SEO reports)
	Keyword       string
	Density       float64
	InternalLinks int
	SnippetReady  bool
}

// Summary aggregates results across all files.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Issues   int
	Warnings int
}

// Report contains all data needed for output formatting.
type Report struct {
	Kind        string // "quality" or "seo"
	GeneratedAt time.Time
	Summary     Summary
	Results     []FileResult
	Duplicates  map[string][]string
	Stats       map[string]any // optional run statistics
}

// FromQuality converts a quality batch result into a report.
func FromQuality(batch *quality.BatchResult) *Report {
	r := &Report{
		Kind:        "quality",
		GeneratedAt: time.Now(),
		Results:     make([]FileResult, 0, len(batch.Reports)),
		Duplicates:  batch.DuplicateExcerpts,
	}

	for _, qr := range batch.Reports {
		r.Results = append(r.Results, FileResult{
			File:          qr.File,
			Passed:        qr.Passed,
			Issues:        qr.Issues,
			Warnings:      qr.Warnings,
			WordCount:     qr.Stats.WordCount,
			H2Count:       qr.Stats.H2Count,
			H3Count:       qr.Stats.H3Count,
			ExcerptLength: qr.Stats.ExcerptLength,
		})
	}

	r.summarize()
	return r
}

// FromSEO converts an SEO batch result into a report.
func FromSEO(batch *seo.BatchResult) *Report {
	r := &Report{
		Kind:        "seo",
		GeneratedAt: time.Now(),
		Results:     make([]FileResult, 0, len(batch.Reports)),
	}

	for _, sr := range batch.Reports {
		r.Results = append(r.Results, FileResult{
			File:          sr.File,
			Passed:        sr.Passed,
			Issues:        sr.Issues,
			Warnings:      sr.Warnings,
			WordCount:     sr.Metrics.WordCount,
			H2Count:       sr.Metrics.H2Count,
			H3Count:       sr.Metrics.H3Count,
			Keyword:       sr.Metrics.Keyword,
			Density:       sr.Metrics.Density,
			InternalLinks: sr.Metrics.InternalLinks,
			SnippetReady:  sr.Metrics.SnippetReady,
		})
	}

	r.summarize()
	return r
}

// summarize recomputes the summary from the result list.
func (r *Report) summarize() {
	s := Summary{Total: len(r.Results)}
	for _, fr := range r.Results {
		if fr.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
		s.Issues += len(fr.Issues)
		s.Warnings += len(fr.Warnings)
	}
	r.Summary = s
}

// Formatter is the interface that output formatters implement.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// GetFormatter returns the appropriate formatter for a format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJUnit:
		return &JUnitFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// FormatReport formats a report using the specified format.
func FormatReport(report *Report, format Format) ([]byte, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return formatter.Format(report)
}

// InferFormat determines the output format from a filename extension.
func InferFormat(filename string) (Format, error) {
	// Handle special case for JUnit
	if strings.HasSuffix(strings.ToLower(filename), ".junit.xml") {
		return FormatJUnit, nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatJUnit, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf(
			"cannot infer format from extension %q (supported: .json, .yaml, .yml, .xml, .junit.xml, .md, .markdown)",
			ext,
		)
	}
}

// WriteToFile writes a formatted report to a file.
func WriteToFile(report *Report, filename string) error {
	format, err := InferFormat(filename)
	if err != nil {
		return err
	}

	data, err := FormatReport(report, format)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

// failedResults returns only the results that did not pass.
func failedResults(results []FileResult) []FileResult {
	var failed []FileResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// warnedResults returns passing results that carry warnings.
func warnedResults(results []FileResult) []FileResult {
	var warned []FileResult
	for _, r := range results {
		if r.Passed && len(r.Warnings) > 0 {
			warned = append(warned, r)
		}
	}
	return warned
}
