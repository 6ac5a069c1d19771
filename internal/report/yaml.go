package report

import (
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// yamlOutput is the YAML structure for output.
type yamlOutput struct {
	Kind        string              `yaml:"kind"`
	GeneratedAt string              `yaml:"generated_at"`
	Results     []yamlResult        `yaml:"results"`
	Duplicates  map[string][]string `yaml:"duplicate_excerpts,omitempty"`
	Stats       map[string]any      `yaml:"stats,omitempty"`
	Summary     yamlSummary         `yaml:"summary"`
}

type yamlSummary struct {
	Total    int `yaml:"total"`
	Passed   int `yaml:"passed"`
	Failed   int `yaml:"failed"`
	Issues   int `yaml:"issues"`
	Warnings int `yaml:"warnings"`
}

type yamlResult struct {
	File          string   `yaml:"file"`
	Keyword       string   `yaml:"keyword,omitempty"`
	Issues        []string `yaml:"issues,omitempty"`
	Warnings      []string `yaml:"warnings,omitempty"`
	Density       float64  `yaml:"density,omitempty"`
	WordCount     int      `yaml:"word_count"`
	H2Count       int      `yaml:"h2_count"`
	H3Count       int      `yaml:"h3_count"`
	ExcerptLength int      `yaml:"excerpt_length,omitempty"`
	InternalLinks int      `yaml:"internal_links,omitempty"`
	Passed        bool     `yaml:"passed"`
	SnippetReady  bool     `yaml:"snippet_ready,omitempty"`
}

// Format implements Formatter.
func (*YAMLFormatter) Format(report *Report) ([]byte, error) {
	output := yamlOutput{
		Kind:        report.Kind,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Summary: yamlSummary{
			Total:    report.Summary.Total,
			Passed:   report.Summary.Passed,
			Failed:   report.Summary.Failed,
			Issues:   report.Summary.Issues,
			Warnings: report.Summary.Warnings,
		},
		Results:    make([]yamlResult, 0, len(report.Results)),
		Duplicates: report.Duplicates,
		Stats:      report.Stats,
	}

	for _, r := range report.Results {
		output.Results = append(output.Results, yamlResult{
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

	return yaml.Marshal(output)
}
