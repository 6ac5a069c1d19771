package report

import (
	"encoding/json"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// jsonOutput is the JSON structure for output.
type jsonOutput struct {
	Kind        string              `json:"kind"`
	GeneratedAt string              `json:"generated_at"`
	Summary     jsonSummary         `json:"summary"`
	Results     []jsonResult        `json:"results"`
	Duplicates  map[string][]string `json:"duplicate_excerpts,omitempty"`
	Stats       map[string]any      `json:"stats,omitempty"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Issues   int `json:"issues"`
	Warnings int `json:"warnings"`
}

type jsonResult struct {
	File          string   `json:"file"`
	Passed        bool     `json:"passed"`
	Issues        []string `json:"issues,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	WordCount     int      `json:"word_count"`
	H2Count       int      `json:"h2_count"`
	H3Count       int      `json:"h3_count"`
	ExcerptLength int      `json:"excerpt_length,omitempty"`
	Keyword       string   `json:"keyword,omitempty"`
	Density       float64  `json:"density,omitempty"`
	InternalLinks int      `json:"internal_links,omitempty"`
	SnippetReady  bool     `json:"snippet_ready,omitempty"`
}

// Format implements Formatter.
func (*JSONFormatter) Format(report *Report) ([]byte, error) {
	output := jsonOutput{
		Kind:        report.Kind,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Summary: jsonSummary{
			Total:    report.Summary.Total,
			Passed:   report.Summary.Passed,
			Failed:   report.Summary.Failed,
			Issues:   report.Summary.Issues,
			Warnings: report.Summary.Warnings,
		},
		Results:    make([]jsonResult, 0, len(report.Results)),
		Duplicates: report.Duplicates,
		Stats:      report.Stats,
	}

	for _, r := range report.Results {
		output.Results = append(output.Results, jsonResult{
			File:          r.File,
			Passed:        r.Passed,
			Issues:        r.Issues,
			Warnings:      r.Warnings,
			WordCount:     r.WordCount,
			H2Count:       r.H2Count,
			H3Count:       r.H3Count,
			ExcerptLength: r.ExcerptLength,
			Keyword:       r.Keyword,
			Density:       r.Density,
			InternalLinks: r.InternalLinks,
			SnippetReady:  r.SnippetReady,
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
