package report

import (
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/copydesk/copydesk/internal/quality"
	"github.com/copydesk/copydesk/internal/seo"
)

// sampleReport builds a quality report with one pass and one fail.
func sampleReport() *Report {
	r := &Report{
		Kind:        "quality",
		GeneratedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Results: []FileResult{
			{
				File:          "posts/good.md",
				Passed:        true,
				Warnings:      []string{"only 3 H2 headings (recommended at least 4)"},
				WordCount:     1450,
				H2Count:       3,
				H3Count:       5,
				ExcerptLength: 180,
			},
			{
				File:      "posts/bad.md",
				Passed:    false,
				Issues:    []string{"word count too low: 500 (minimum 1200)", `banned template phrase "In today's digital age"`},
				WordCount: 500,
				H2Count:   2,
				H3Count:   1,
			},
		},
	}
	r.summarize()
	return r
}

// ============================================================================
// Format helpers
// ============================================================================

func TestIsValidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		valid  bool
	}{
		{"json", true},
		{"yaml", true},
		{"junit", true},
		{"markdown", true},
		{"JSON", true}, // case insensitive
		{"xml", false},
		{"csv", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, IsValidFormat(tt.format))
		})
	}
}

func TestValidFormats(t *testing.T) {
	t.Parallel()

	formats := ValidFormats()
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "yaml")
	assert.Contains(t, formats, "junit")
	assert.Contains(t, formats, "markdown")
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		expected Format
		wantErr  bool
	}{
		{"report.json", FormatJSON, false},
		{"report.yaml", FormatYAML, false},
		{"report.yml", FormatYAML, false},
		{"report.junit.xml", FormatJUnit, false},
		{"report.xml", FormatJUnit, false},
		{"report.md", FormatMarkdown, false},
		{"report.markdown", FormatMarkdown, false},
		{"REPORT.JSON", FormatJSON, false},
		{"report.txt", "", true},
		{"report", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			format, err := InferFormat(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestGetFormatter(t *testing.T) {
	t.Parallel()

	for _, f := range ValidFormats() {
		formatter, err := GetFormatter(Format(f))
		require.NoError(t, err)
		assert.NotNil(t, formatter)
	}

	_, err := GetFormatter("bogus")
	assert.Error(t, err)
}

// ============================================================================
// Converters
// ============================================================================

func TestFromQuality(t *testing.T) {
	t.Parallel()

	batch := &quality.BatchResult{
		Reports: []quality.Report{
			{File: "a.md", Passed: true, Stats: quality.Stats{WordCount: 1300, H2Count: 5}},
			{File: "b.md", Passed: false, Issues: []string{"word count too low: 100 (minimum 1200)"}},
		},
		DuplicateExcerpts: map[string][]string{
			"shared excerpt": {"a.md", "b.md"},
		},
	}

	r := FromQuality(batch)

	assert.Equal(t, "quality", r.Kind)
	assert.Len(t, r.Results, 2)
	assert.Equal(t, 2, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.Passed)
	assert.Equal(t, 1, r.Summary.Failed)
	assert.Equal(t, 1, r.Summary.Issues)
	assert.Equal(t, 1300, r.Results[0].WordCount)
	assert.Len(t, r.Duplicates, 1)
}

func TestFromSEO(t *testing.T) {
	t.Parallel()

	batch := &seo.BatchResult{
		Reports: []seo.Report{
			{
				File:   "a.md",
				Passed: true,
				Metrics: seo.Metrics{
					Keyword:       "hotel revenue management",
					Density:       1.8,
					WordCount:     1400,
					InternalLinks: 3,
					SnippetReady:  true,
				},
			},
			{File: "missing.md", Passed: false, Issues: []string{"File not found"}},
		},
	}

	r := FromSEO(batch)

	assert.Equal(t, "seo", r.Kind)
	assert.Equal(t, 2, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.Failed)
	assert.Equal(t, "hotel revenue management", r.Results[0].Keyword)
	assert.InDelta(t, 1.8, r.Results[0].Density, 0.001)
	assert.True(t, r.Results[0].SnippetReady)
}

// ============================================================================
// JSON formatter
// ============================================================================

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "quality", parsed["kind"])
	assert.Contains(t, parsed, "generated_at")

	summary, ok := parsed["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), summary["total"])
	assert.Equal(t, float64(1), summary["passed"])
	assert.Equal(t, float64(1), summary["failed"])

	results, ok := parsed["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "posts/good.md", first["file"])
	assert.Equal(t, true, first["passed"])
	assert.Equal(t, float64(1450), first["word_count"])
}

// ============================================================================
// YAML formatter
// ============================================================================

func TestYAMLFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatYAML)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))

	assert.Equal(t, "quality", parsed["kind"])
	assert.Contains(t, parsed, "summary")
	assert.Contains(t, parsed, "results")
}

// ============================================================================
// JUnit formatter
// ============================================================================

func TestJUnitFormatter(t *testing.T) {
	t.Parallel()

	t.Run("WithFailures", func(t *testing.T) {
		t.Parallel()
		data, err := FormatReport(sampleReport(), FormatJUnit)
		require.NoError(t, err)

		assert.Contains(t, string(data), xml.Header[:14])
		assert.Contains(t, string(data), "copydesk-quality-check")
		assert.Contains(t, string(data), "posts/bad.md")
		assert.Contains(t, string(data), "word count too low")
		assert.NotContains(t, string(data), "posts/good.md")

		// Must be well-formed XML
		var suites struct {
			XMLName xml.Name `xml:"testsuites"`
			Tests   int      `xml:"tests,attr"`
		}
		require.NoError(t, xml.Unmarshal(data, &suites))
		assert.Equal(t, 2, suites.Tests)
	})

	t.Run("AllPassing", func(t *testing.T) {
		t.Parallel()
		r := &Report{
			Kind:        "quality",
			GeneratedAt: time.Now(),
			Results:     []FileResult{{File: "a.md", Passed: true}},
		}
		r.summarize()

		data, err := FormatReport(r, FormatJUnit)
		require.NoError(t, err)
		assert.Contains(t, string(data), "all-posts")
	})
}

// ============================================================================
// Markdown formatter
// ============================================================================

func TestMarkdownFormatter(t *testing.T) {
	t.Parallel()

	t.Run("ContainsSections", func(t *testing.T) {
		t.Parallel()
		data, err := FormatReport(sampleReport(), FormatMarkdown)
		require.NoError(t, err)
		output := string(data)

		assert.Contains(t, output, "# Copydesk Content Quality Report")
		assert.Contains(t, output, "## Summary")
		assert.Contains(t, output, "## Failed Posts (1)")
		assert.Contains(t, output, "posts/bad.md")
		assert.Contains(t, output, "word count too low")
		assert.Contains(t, output, "## Warnings (1)")
	})

	t.Run("SEOTitle", func(t *testing.T) {
		t.Parallel()
		r := sampleReport()
		r.Kind = "seo"
		data, err := FormatReport(r, FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Copydesk SEO Audit Report")
	})

	t.Run("DuplicateExcerpts", func(t *testing.T) {
		t.Parallel()
		r := sampleReport()
		r.Duplicates = map[string][]string{
			"a shared excerpt": {"posts/one.md", "posts/two.md"},
		}
		data, err := FormatReport(r, FormatMarkdown)
		require.NoError(t, err)
		output := string(data)

		assert.Contains(t, output, "## Duplicate Excerpts (1)")
		assert.Contains(t, output, "a shared excerpt")
		assert.Contains(t, output, "posts/one.md")
	})

	t.Run("EscapesPipes", func(t *testing.T) {
		t.Parallel()
		r := &Report{
			Kind:        "quality",
			GeneratedAt: time.Now(),
			Results: []FileResult{
				{File: "a.md", Passed: true, Warnings: []string{"odd | pipe"}},
			},
		}
		r.summarize()

		data, err := FormatReport(r, FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, string(data), `odd \| pipe`)
	})
}

// ============================================================================
// WriteToFile
// ============================================================================

func TestWriteToFile(t *testing.T) {
	t.Parallel()

	t.Run("WritesJSON", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, WriteToFile(sampleReport(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, "quality", parsed["kind"])
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "report.txt")
		err := WriteToFile(sampleReport(), path)
		assert.Error(t, err)
		assert.NoFileExists(t, path)
	})
}
