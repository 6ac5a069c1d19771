package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/copydesk/copydesk/internal/quality"
	"github.com/copydesk/copydesk/internal/report"
	"github.com/copydesk/copydesk/internal/scanner"
	"github.com/copydesk/copydesk/internal/stats"

	"github.com/spf13/cobra"
)

// Flag variables for the check command.
var (
	outputFormat string
	outputFile   string
	showAll      bool
	showWarnings bool
	showStats    bool

	// Rule overrides.
	minWords       int
	bannedPhrases  []string
	bannedHeadings []string

	// Scan filters.
	includePatterns []string
	excludePatterns []string
	noConfig        bool
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate posts against editorial quality rules",
	Long: `Scan a content directory and validate every post against the
editorial quality rules: required front-matter fields, minimum word
count, excerpt length, banned phrases, heading structure, and
duplicate excerpts across the corpus.

If no path is provided, uses the content directory from the config
file, falling back to src/content/posts.

By default, shows failed posts and passing posts with warnings.
Use flags to filter what's displayed.

Exit codes:
  0 - Every post passed and no duplicate excerpts
  1 - Failed posts, duplicate excerpts, or errors found

Examples:
  copydesk check                         # Check the content directory
  copydesk check ./src/content/posts     # Check a specific directory
  copydesk check --format=json           # Output JSON to stdout
  copydesk check --format=yaml           # Output YAML to stdout
  copydesk check --output=report.json    # Write JSON report to file
  copydesk check --output=report.md      # Write Markdown report to file
  copydesk check --output=report.junit.xml  # Write JUnit XML for CI/CD
  copydesk check --all                   # Show all posts including passed
  copydesk check --warnings              # Show only posts with warnings
  copydesk check --min-words=800         # Override minimum word count
  copydesk check --exclude="drafts/**"   # Skip draft posts
  copydesk check --stats                 # Show performance statistics

Note: --format and --output are mutually exclusive.

Config file (.copydeskrc.yaml or .copydeskrc.toml):
  content:
    dir: src/content/posts
    exclude: ["drafts/**"]
  quality:
    min_word_count: 1200
    banned_phrases: ["game-changer"]`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Output options
	checkCmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		"Output format for stdout: json, yaml, junit, markdown")
	checkCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Write report to file (format inferred from extension: .json, .yaml, .xml, .junit.xml, .md)")

	// Filter flags
	checkCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all posts (passed, warnings, failed)")
	checkCmd.Flags().BoolVarP(&showWarnings, "warnings", "w", false, "Show only posts with warnings")

	// Rule options
	checkCmd.Flags().IntVar(&minWords, "min-words", 0,
		"Minimum body word count (0 = use config or default)")
	checkCmd.Flags().StringSliceVar(&bannedPhrases, "banned-phrase", nil,
		"Extra banned phrases (can be repeated or comma-separated)")
	checkCmd.Flags().StringSliceVar(&bannedHeadings, "banned-heading", nil,
		"Extra banned headings (can be repeated)")

	// Scan options
	checkCmd.Flags().StringSliceVar(&includePatterns, "include", nil,
		"Glob patterns to include (can be repeated)")
	checkCmd.Flags().StringSliceVar(&excludePatterns, "exclude", nil,
		"Glob patterns to exclude (can be repeated)")
	checkCmd.Flags().BoolVar(&noConfig, "no-config", false,
		"Skip loading the .copydeskrc config file")

	// Stats flag
	checkCmd.Flags().BoolVar(&showStats, "stats", false,
		"Show detailed performance statistics")
}

// runCheck is the main entry point for the check command.
// It orchestrates the entire quality validation workflow.
func runCheck(_ *cobra.Command, args []string) {
	perf := stats.New()
	exitOnError(validateOutputFlags(outputFormat, outputFile), "Invalid flags")

	lc, err := LoadConfig(noConfig)
	exitOnError(err, "Invalid config")

	path := lc.GetContentDir(getPathArg(args))
	useStructuredOutput := outputFormat != ""

	// Phase 1: Scan for posts
	files := scanPosts(lc, path, perf, useStructuredOutput)
	if len(files) == 0 {
		handleEmptyCorpus(path, useStructuredOutput, perf)
		return
	}

	// Phase 2: Validate
	batch := validatePosts(lc, files, perf)

	// Phase 3: Output results
	routeCheckOutput(batch, perf, useStructuredOutput)

	if batch.Failed() {
		os.Exit(1)
	}
}

// scanPosts finds content files under path and returns the list.
func scanPosts(lc *LoadedConfig, path string, perf *stats.Stats, useStructuredOutput bool) []string {
	perf.StartScan()

	files, err := scanner.FindContentFilesWithOptions(
		lc.BuildScanOptions(path, includePatterns, excludePatterns))
	exitOnError(err, "Error scanning directory")
	perf.EndScan(len(files))

	if !useStructuredOutput {
		fmt.Printf("Found %d post(s) in %s\n", len(files), path)
	}
	return files
}

// validatePosts runs the quality validator over the corpus.
func validatePosts(lc *LoadedConfig, files []string, perf *stats.Stats) quality.BatchResult {
	perf.StartValidate()

	v := quality.New(lc.BuildQualityOptions(minWords, bannedPhrases, bannedHeadings))
	batch := v.ValidateAll(files)

	for _, r := range batch.Reports {
		perf.RecordPost(r.Stats.WordCount, r.Stats.H2Count, r.Stats.H3Count,
			len(r.Issues), len(r.Warnings))
	}
	perf.EndValidate()

	return batch
}

// routeCheckOutput handles output based on format flags.
func routeCheckOutput(batch quality.BatchResult, perf *stats.Stats, useStructuredOutput bool) {
	switch {
	case useStructuredOutput:
		emitStructuredTo(report.FromQuality(&batch), outputFormat, perf, showStats)
	case outputFile != "":
		writeReportFileTo(report.FromQuality(&batch), outputFile, perf, showStats)
	default:
		printQualityText(batch)
		if showStats {
			fmt.Print(perf.String())
		}
	}
}

// handleEmptyCorpus handles the case when no content files are found.
func handleEmptyCorpus(path string, useStructuredOutput bool, perf *stats.Stats) {
	empty := quality.BatchResult{}
	switch {
	case useStructuredOutput:
		emitStructuredTo(report.FromQuality(&empty), outputFormat, perf, showStats)
	case outputFile != "":
		writeReportFileTo(report.FromQuality(&empty), outputFile, perf, showStats)
	default:
		fmt.Printf("No posts found in %s.\n", path)
		if showStats {
			fmt.Print(perf.String())
		}
	}
}

// emitStructuredTo formats a report to stdout with optional stats.
func emitStructuredTo(rep *report.Report, format string, perf *stats.Stats, withStats bool) {
	if withStats && perf != nil {
		rep.Stats = perf.ToJSON()
	}

	data, err := report.FormatReport(rep, report.Format(format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(string(data))
}

// writeReportFileTo writes a report to a file with optional stats.
func writeReportFileTo(rep *report.Report, file string, perf *stats.Stats, withStats bool) {
	if withStats && perf != nil {
		rep.Stats = perf.ToJSON()
	}

	if err := report.WriteToFile(rep, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote report to %s\n", file)

	// Also print summary to stdout
	s := rep.Summary
	fmt.Printf("\nSummary: %d passed | %d failed | %d issue(s) | %d warning(s)\n",
		s.Passed, s.Failed, s.Issues, s.Warnings)

	if withStats {
		fmt.Print(perf.String())
	}
}

// validateOutputFlags checks for invalid output flag combinations.
func validateOutputFlags(format, file string) error {
	// Validate mutually exclusive flags
	if format != "" && file != "" {
		return fmt.Errorf("--format and --output are mutually exclusive; " +
			"use --format for stdout output, or --output for file output")
	}

	// Validate format if specified
	if format != "" && !report.IsValidFormat(format) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			format, strings.Join(report.ValidFormats(), ", "))
	}

	return nil
}
