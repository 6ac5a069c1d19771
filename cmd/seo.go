package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/copydesk/copydesk/internal/report"
	"github.com/copydesk/copydesk/internal/scanner"
	"github.com/copydesk/copydesk/internal/seo"
	"github.com/copydesk/copydesk/internal/stats"

	"github.com/spf13/cobra"
)

// Flag variables for the seo command.
var (
	seoFormat   string
	seoOutput   string
	seoDir      string
	seoAll      bool
	seoStats    bool
	seoNoConfig bool
)

// seoCmd represents the seo command.
var seoCmd = &cobra.Command{
	Use:   "seo [target...]",
	Short: "Audit posts against SEO guidelines",
	Long: `Audit a curated list of posts against SEO guidelines: primary
keyword density and placement, heading volume, internal link count,
featured-snippet readiness, and excerpt uniqueness.

Targets are post filenames resolved against the content directory.
The .md extension may be omitted. With no targets on the command
line, the target list comes from the config file; with neither, every
post in the content directory is audited.

Exit codes:
  0 - Every target passed
  1 - Failed targets or errors found

Examples:
  copydesk seo                              # Audit configured targets
  copydesk seo hotel-pricing revenue-tips   # Audit specific posts
  copydesk seo --dir=./src/content/posts
  copydesk seo --format=json                # Output JSON to stdout
  copydesk seo --output=seo.junit.xml       # Write JUnit XML for CI/CD
  copydesk seo --all                        # Show passing targets too

Note: --format and --output are mutually exclusive.

Config file (.copydeskrc.yaml or .copydeskrc.toml):
  seo:
    targets: [hotel-pricing.md, revenue-tips.md]`,
	Run: runSEO,
}

func init() {
	rootCmd.AddCommand(seoCmd)

	seoCmd.Flags().StringVarP(&seoFormat, "format", "f", "",
		"Output format for stdout: json, yaml, junit, markdown")
	seoCmd.Flags().StringVarP(&seoOutput, "output", "o", "",
		"Write report to file (format inferred from extension: .json, .yaml, .xml, .junit.xml, .md)")
	seoCmd.Flags().StringVarP(&seoDir, "dir", "d", "",
		"Content directory (defaults to config or src/content/posts)")
	seoCmd.Flags().BoolVarP(&seoAll, "all", "a", false,
		"Show all targets including passed")
	seoCmd.Flags().BoolVar(&seoStats, "stats", false,
		"Show detailed performance statistics")
	seoCmd.Flags().BoolVar(&seoNoConfig, "no-config", false,
		"Skip loading the .copydeskrc config file")
}

// runSEO is the main entry point for the seo command.
func runSEO(_ *cobra.Command, args []string) {
	perf := stats.New()
	exitOnError(validateOutputFlags(seoFormat, seoOutput), "Invalid flags")

	lc, err := LoadConfig(seoNoConfig)
	exitOnError(err, "Invalid config")

	dir := lc.GetContentDir(seoDir)
	useStructuredOutput := seoFormat != ""

	// Phase 1: Resolve targets
	targets := resolveTargets(lc, dir, args, perf, useStructuredOutput)
	if len(targets) == 0 {
		if !useStructuredOutput {
			fmt.Printf("No targets to audit in %s.\n", dir)
		}
		return
	}

	// Phase 2: Audit
	perf.StartValidate()
	batch := seo.New(seo.DefaultOptions()).ValidateTargets(dir, targets)
	for _, r := range batch.Reports {
		perf.RecordPost(r.Metrics.WordCount, r.Metrics.H2Count, r.Metrics.H3Count,
			len(r.Issues), len(r.Warnings))
		perf.RecordSEO(r.Metrics.Density, r.Metrics.InternalLinks)
	}
	perf.EndValidate()

	// Phase 3: Output results
	routeSEOOutput(batch, perf, useStructuredOutput)

	if batch.Failed() {
		os.Exit(1)
	}
}

// resolveTargets builds the target list: CLI args win, then config,
// then every content file under dir. Extensionless names get .md.
func resolveTargets(
	lc *LoadedConfig, dir string, args []string, perf *stats.Stats, useStructuredOutput bool,
) []string {
	perf.StartScan()

	targets := lc.GetSEOTargets(args)
	if len(targets) == 0 {
		files, err := scanner.FindContentFiles(dir)
		if err != nil {
			// Missing directory with no explicit targets is an empty audit.
			perf.EndScan(0)
			return nil
		}
		for _, f := range files {
			rel, err := filepath.Rel(dir, f)
			if err != nil {
				rel = f
			}
			targets = append(targets, rel)
		}
		sort.Strings(targets)
	}

	normalized := make([]string, 0, len(targets))
	for _, t := range targets {
		if filepath.Ext(t) == "" {
			t += ".md"
		}
		normalized = append(normalized, t)
	}
	perf.EndScan(len(normalized))

	if !useStructuredOutput {
		fmt.Printf("Auditing %d target(s) in %s\n", len(normalized), dir)
	}
	return normalized
}

// routeSEOOutput handles output based on format flags.
func routeSEOOutput(batch seo.BatchResult, perf *stats.Stats, useStructuredOutput bool) {
	switch {
	case useStructuredOutput:
		emitStructuredTo(report.FromSEO(&batch), seoFormat, perf, seoStats)
	case seoOutput != "":
		writeReportFileTo(report.FromSEO(&batch), seoOutput, perf, seoStats)
	default:
		printSEOText(batch)
		if seoStats {
			fmt.Print(perf.String())
		}
	}
}
