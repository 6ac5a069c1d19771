package cmd

import (
	"fmt"

	"github.com/copydesk/copydesk/internal/seo"
)

// printSEOText prints an SEO batch as human-readable text to stdout.
func printSEOText(batch seo.BatchResult) {
	totalIssues, totalWarnings := 0, 0
	for _, r := range batch.Reports {
		totalIssues += len(r.Issues)
		totalWarnings += len(r.Warnings)
	}

	fmt.Println()
	fmt.Printf("Summary: %d passed | %d failed | %d issue(s) | %d warning(s)\n\n",
		batch.PassedCount(), batch.FailedCount(), totalIssues, totalWarnings)

	failed, warned, passed := splitSEOReports(batch.Reports)

	if len(failed) == 0 && len(warned) == 0 && !seoAll {
		fmt.Println("All targets pass the SEO audit!")
		return
	}

	printSEOSection("Failed Targets", failed)
	printSEOSection("Warnings", warned)

	if seoAll {
		printSEOSection("Passed", passed)
	}
}

// splitSEOReports groups reports into failed, passed-with-warnings, and clean.
func splitSEOReports(reports []seo.Report) (failed, warned, passed []seo.Report) {
	for _, r := range reports {
		switch {
		case !r.Passed:
			failed = append(failed, r)
		case len(r.Warnings) > 0:
			warned = append(warned, r)
		default:
			passed = append(passed, r)
		}
	}
	return failed, warned, passed
}

// printSEOSection prints a titled section of SEO reports if any exist.
func printSEOSection(title string, reports []seo.Report) {
	if len(reports) == 0 {
		return
	}
	fmt.Printf("=== %s (%d) ===\n\n", title, len(reports))
	for _, r := range reports {
		printSEOReport(r)
	}
	fmt.Println()
}

// printSEOReport formats and prints a single SEO audit report.
func printSEOReport(r seo.Report) {
	marker := "✓"
	switch {
	case !r.Passed:
		marker = "✗"
	case len(r.Warnings) > 0:
		marker = "⚠"
	}

	fmt.Printf("  %s %s\n", marker, r.File)
	if r.Metrics.Keyword != "" {
		fmt.Printf("       Keyword: %q | Density: %.2f%%\n", r.Metrics.Keyword, r.Metrics.Density)
	}
	fmt.Printf("       Stats: %d words | %d H2 | %d H3 | %d internal link(s)\n",
		r.Metrics.WordCount, r.Metrics.H2Count, r.Metrics.H3Count, r.Metrics.InternalLinks)
	if r.Metrics.SnippetReady {
		fmt.Println("       Snippet: ready")
	}
	for _, issue := range r.Issues {
		fmt.Printf("       Issue: %s\n", issue)
	}
	for _, warning := range r.Warnings {
		fmt.Printf("       Warning: %s\n", warning)
	}
	fmt.Println()
}
