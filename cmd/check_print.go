package cmd

import (
	"fmt"
	"sort"

	"github.com/copydesk/copydesk/internal/helpers"
	"github.com/copydesk/copydesk/internal/quality"
)

// printQualityText prints a quality batch as human-readable text to stdout.
// This is the default output mode when no format flag is specified.
func printQualityText(batch quality.BatchResult) {
	totalIssues, totalWarnings := 0, 0
	for _, r := range batch.Reports {
		totalIssues += len(r.Issues)
		totalWarnings += len(r.Warnings)
	}

	fmt.Println()
	fmt.Printf("Summary: %d passed | %d failed | %d issue(s) | %d warning(s)\n\n",
		batch.PassedCount(), batch.FailedCount(), totalIssues, totalWarnings)

	failed, warned, passed := splitReports(batch.Reports)

	if showWarnings {
		// Flat list of everything carrying warnings
		for _, r := range batch.Reports {
			if len(r.Warnings) > 0 {
				printWarnedReport(r)
			}
		}
		if totalWarnings == 0 {
			fmt.Println("No warnings found.")
		}
		return
	}

	if len(failed) == 0 && len(batch.DuplicateExcerpts) == 0 {
		if !showAll && len(warned) == 0 {
			fmt.Println("All posts pass quality checks!")
			return
		}
	}

	printSection("Failed Posts", failed, printFailedReport)
	printSection("Warnings", warned, printWarnedReport)
	printDuplicateExcerpts(batch.DuplicateExcerpts)

	if showAll {
		printSection("Passed", passed, printPassedReport)
	}
}

// splitReports groups reports into failed, passed-with-warnings, and clean.
func splitReports(reports []quality.Report) (failed, warned, passed []quality.Report) {
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

// printSection prints a titled section of reports if any exist.
// Uses the provided printer function to format each individual report.
func printSection(title string, reports []quality.Report, printer func(quality.Report)) {
	if len(reports) == 0 {
		return
	}
	fmt.Printf("=== %s (%d) ===\n\n", title, len(reports))
	for _, r := range reports {
		printer(r)
	}
	fmt.Println()
}

// printFailedReport formats and prints a report for a post that failed.
func printFailedReport(r quality.Report) {
	fmt.Printf("  ✗ %s\n", r.File)
	printReportStats(r)
	for _, issue := range r.Issues {
		fmt.Printf("       Issue: %s\n", issue)
	}
	for _, warning := range r.Warnings {
		fmt.Printf("       Warning: %s\n", warning)
	}
	fmt.Println()
}

// printWarnedReport formats and prints a passing report that carries warnings.
func printWarnedReport(r quality.Report) {
	fmt.Printf("  ⚠ %s\n", r.File)
	printReportStats(r)
	for _, warning := range r.Warnings {
		fmt.Printf("       Warning: %s\n", warning)
	}
	fmt.Println()
}

// printPassedReport formats and prints a clean report (shown with --all).
func printPassedReport(r quality.Report) {
	fmt.Printf("  ✓ %s\n", r.File)
	printReportStats(r)
	fmt.Println()
}

func printReportStats(r quality.Report) {
	fmt.Printf("       Stats: %d words | %d H2 | %d H3\n",
		r.Stats.WordCount, r.Stats.H2Count, r.Stats.H3Count)
}

// printDuplicateExcerpts prints the shared-excerpt groups found in the corpus.
func printDuplicateExcerpts(duplicates map[string][]string) {
	if len(duplicates) == 0 {
		return
	}

	fmt.Printf("=== Duplicate Excerpts (%d) ===\n\n", len(duplicates))

	excerpts := make([]string, 0, len(duplicates))
	for e := range duplicates {
		excerpts = append(excerpts, e)
	}
	sort.Strings(excerpts)

	for _, e := range excerpts {
		fmt.Printf("  ◈ %q\n", helpers.TruncateText(e, 70))
		for _, file := range duplicates[e] {
			fmt.Printf("       File: %s\n", file)
		}
		fmt.Println()
	}
}
