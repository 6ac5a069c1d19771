package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/copydesk/copydesk/internal/helpers"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct{}

// Format implements Formatter.
func (*MarkdownFormatter) Format(report *Report) ([]byte, error) {
	// Pre-grow builder: estimate ~200 bytes per result + ~500 bytes header
	var b strings.Builder
	b.Grow(len(report.Results)*200 + 500)

	// Header
	title := "Content Quality Report"
	if report.Kind == "seo" {
		title = "SEO Audit Report"
	}
	b.WriteString(fmt.Sprintf("# Copydesk %s\n\n", title))
	b.WriteString(fmt.Sprintf("**Generated:** %s  \n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Posts Checked:** %d\n\n", report.Summary.Total))

	// Summary table
	b.WriteString("## Summary\n\n")
	b.WriteString("| Result | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Passed | %d |\n", report.Summary.Passed))
	b.WriteString(fmt.Sprintf("| Failed | %d |\n", report.Summary.Failed))
	b.WriteString(fmt.Sprintf("| Issues | %d |\n", report.Summary.Issues))
	b.WriteString(fmt.Sprintf("| Warnings | %d |\n", report.Summary.Warnings))
	b.WriteString("\n")

	// Failed posts section
	failed := failedResults(report.Results)
	if len(failed) > 0 {
		b.WriteString(fmt.Sprintf("## Failed Posts (%d)\n\n", len(failed)))
		for _, r := range failed {
			b.WriteString(fmt.Sprintf("### %s\n\n", escapeMarkdown(r.File)))
			writeMetricsLine(&b, report.Kind, r)
			for _, issue := range r.Issues {
				b.WriteString(fmt.Sprintf("- ✗ %s\n", escapeMarkdown(issue)))
			}
			for _, w := range r.Warnings {
				b.WriteString(fmt.Sprintf("- ⚠ %s\n", escapeMarkdown(w)))
			}
			b.WriteString("\n")
		}
	}

	// Warnings section (passing posts with warnings)
	warned := warnedResults(report.Results)
	if len(warned) > 0 {
		b.WriteString(fmt.Sprintf("## Warnings (%d)\n\n", len(warned)))
		b.WriteString("| File | Warning |\n")
		b.WriteString("|------|--------|\n")
		for _, r := range warned {
			for _, w := range r.Warnings {
				b.WriteString(fmt.Sprintf("| %s | %s |\n",
					escapeMarkdown(helpers.TruncatePath(r.File, 50)),
					escapeMarkdown(w)))
			}
		}
		b.WriteString("\n")
	}

	// Duplicate excerpts section
	if len(report.Duplicates) > 0 {
		b.WriteString(fmt.Sprintf("## Duplicate Excerpts (%d)\n\n", len(report.Duplicates)))
		excerpts := make([]string, 0, len(report.Duplicates))
		for excerpt := range report.Duplicates {
			excerpts = append(excerpts, excerpt)
		}
		sort.Strings(excerpts)
		for _, excerpt := range excerpts {
			b.WriteString(fmt.Sprintf("- %q\n", helpers.TruncateText(excerpt, 80)))
			for _, file := range report.Duplicates[excerpt] {
				b.WriteString(fmt.Sprintf("  - `%s`\n", file))
			}
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// writeMetricsLine writes the per-post metrics line for the detail section.
func writeMetricsLine(b *strings.Builder, kind string, r FileResult) {
	if kind == "seo" && r.Keyword != "" {
		b.WriteString(fmt.Sprintf("**Keyword:** `%s` (%.2f%%) · **Words:** %d · **H2/H3:** %d/%d · **Internal Links:** %d\n\n",
			r.Keyword, r.Density, r.WordCount, r.H2Count, r.H3Count, r.InternalLinks))
		return
	}
	b.WriteString(fmt.Sprintf("**Words:** %d · **H2/H3:** %d/%d\n\n",
		r.WordCount, r.H2Count, r.H3Count))
}

// escapeMarkdown escapes special markdown characters in a string.
func escapeMarkdown(s string) string {
	// Escape pipe characters which break tables
	s = strings.ReplaceAll(s, "|", "\\|")
	// Escape backticks
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}
