// Package quality applies the editorial rule set to a corpus of
// markdown content files: required front-matter fields, length bounds,
// banned template phrases, heading checks, and corpus-wide excerpt
// uniqueness. Each file is analyzed independently; one bad file never
// aborts the batch.
package quality

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/copydesk/copydesk/internal/frontmatter"
)

// Default thresholds for the per-file checks.
const (
	// DefaultMinWordCount is the minimum body word count for a post.
	DefaultMinWordCount = 1200

	// DefaultExcerptMin and DefaultExcerptMax bound the recommended
	// excerpt length in characters.
	DefaultExcerptMin = 150
	DefaultExcerptMax = 200

	// DefaultMinH2 is the recommended minimum number of H2 sections.
	DefaultMinH2 = 4
)

// RequiredFields are the front-matter fields every post must carry.
var RequiredFields = []string{"title", "date", "excerpt", "category", "author", "coverImage"}

// Options configures the validator thresholds and term lists.
type Options struct {
	MinWordCount   int
	ExcerptMin     int
	ExcerptMax     int
	MinH2          int
	BannedPhrases  []string
	BannedHeadings []string
}

// DefaultOptions returns the standard editorial rule set.
func DefaultOptions() Options {
	return Options{
		MinWordCount:   DefaultMinWordCount,
		ExcerptMin:     DefaultExcerptMin,
		ExcerptMax:     DefaultExcerptMax,
		MinH2:          DefaultMinH2,
		BannedPhrases:  DefaultBannedPhrases,
		BannedHeadings: DefaultBannedHeadings,
	}
}

// WithMinWordCount overrides the minimum body word count.
func (o Options) WithMinWordCount(n int) Options {
	if n > 0 {
		o.MinWordCount = n
	}
	return o
}

// WithExtraPhrases appends project-specific banned phrases.
func (o Options) WithExtraPhrases(phrases []string) Options {
	o.BannedPhrases = append(o.BannedPhrases, phrases...)
	return o
}

// WithExtraHeadings appends project-specific banned headings.
func (o Options) WithExtraHeadings(headings []string) Options {
	o.BannedHeadings = append(o.BannedHeadings, headings...)
	return o
}

// Stats holds the per-file measurements taken during validation.
type Stats struct {
	WordCount     int
	H2Count       int
	H3Count       int
	ExcerptLength int
}

// Report is the outcome of validating a single file.
// Issues block the pass status; warnings are advisory.
type Report struct {
	File     string
	Passed   bool
	Issues   []string
	Warnings []string
	Stats    Stats
}

// BatchResult aggregates a full corpus run.
type BatchResult struct {
	Reports           []Report
	DuplicateExcerpts map[string][]string
}

// Failed reports whether the batch as a whole failed: any per-file
// failure or any shared excerpt sinks the run.
func (b BatchResult) Failed() bool {
	for _, r := range b.Reports {
		if !r.Passed {
			return true
		}
	}
	return len(b.DuplicateExcerpts) > 0
}

// PassedCount returns how many files passed.
func (b BatchResult) PassedCount() int {
	n := 0
	for _, r := range b.Reports {
		if r.Passed {
			n++
		}
	}
	return n
}

// FailedCount returns how many files failed.
func (b BatchResult) FailedCount() int {
	return len(b.Reports) - b.PassedCount()
}

// Validator runs the quality rule set.
type Validator struct {
	opts Options
}

// New creates a Validator with the given options.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// ValidateAll validates every file and runs the corpus-level
// duplicate-excerpt check. This is a blocking operation.
func (v *Validator) ValidateAll(paths []string) BatchResult {
	reports := make([]Report, 0, len(paths))
	for report := range v.Stream(context.Background(), paths) {
		reports = append(reports, report)
	}
	return BatchResult{
		Reports:           reports,
		DuplicateExcerpts: FindDuplicateExcerpts(paths),
	}
}

// Stream validates files one by one and emits each report as it is
// produced. The channel is closed when every file has been processed
// or the context is canceled. Read failures become failed reports
// rather than terminating the stream.
func (v *Validator) Stream(ctx context.Context, paths []string) <-chan Report {
	reports := make(chan Report)

	go func() {
		defer close(reports)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			default:
			}

			raw, err := os.ReadFile(path)
			var report Report
			if err != nil {
				report = Report{
					File:   path,
					Issues: []string{fmt.Sprintf("cannot read file: %v", err)},
				}
			} else {
				report = v.ValidateFile(path, string(raw))
			}

			select {
			case reports <- report:
			case <-ctx.Done():
				return
			}
		}
	}()

	return reports
}

// ValidateFile applies every per-file check to one document.
func (v *Validator) ValidateFile(name, raw string) Report {
	meta, body := frontmatter.Parse(raw)

	report := Report{File: name}

	v.checkRequiredFields(&report, meta)
	v.checkExcerptLength(&report, meta["excerpt"])
	v.checkWordCount(&report, body)
	v.checkBannedPhrases(&report, body)
	v.checkHeadings(&report, meta["title"], body)

	report.Passed = len(report.Issues) == 0
	return report
}

func (v *Validator) checkRequiredFields(report *Report, meta map[string]string) {
	for _, field := range RequiredFields {
		if strings.TrimSpace(meta[field]) == "" {
			report.Issues = append(report.Issues,
				fmt.Sprintf("missing required front-matter field %q", field))
		}
	}
}

func (v *Validator) checkExcerptLength(report *Report, excerpt string) {
	length := utf8.RuneCountInString(excerpt)
	report.Stats.ExcerptLength = length
	if length < v.opts.ExcerptMin || length > v.opts.ExcerptMax {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("excerpt length %d outside recommended %d-%d characters",
				length, v.opts.ExcerptMin, v.opts.ExcerptMax))
	}
}

func (v *Validator) checkWordCount(report *Report, body string) {
	count := CountWords(body)
	report.Stats.WordCount = count
	if count < v.opts.MinWordCount {
		report.Issues = append(report.Issues,
			fmt.Sprintf("word count too low: %d (minimum %d)", count, v.opts.MinWordCount))
	}
}

func (v *Validator) checkBannedPhrases(report *Report, body string) {
	for _, phrase := range v.opts.BannedPhrases {
		if strings.Contains(body, phrase) {
			report.Issues = append(report.Issues,
				fmt.Sprintf("banned template phrase %q", phrase))
		}
	}
}

func (v *Validator) checkHeadings(report *Report, title, body string) {
	h2, h3 := Headings(body)
	report.Stats.H2Count = len(h2)
	report.Stats.H3Count = len(h3)

	if len(h2) < v.opts.MinH2 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("only %d H2 headings (recommended at least %d)", len(h2), v.opts.MinH2))
	}

	banned := make(map[string]bool, len(v.opts.BannedHeadings))
	for _, h := range v.opts.BannedHeadings {
		banned[h] = true
	}
	for _, h := range append(append([]string{}, h2...), h3...) {
		if banned[h] {
			report.Issues = append(report.Issues,
				fmt.Sprintf("generic heading %q", h))
		}
	}

	// At least one H2 should pick up a meaningful word from the title.
	if len(h2) > 0 {
		if words := SignificantWords(title); len(words) > 0 && !anyHeadingMatches(h2, words) {
			report.Warnings = append(report.Warnings,
				"no H2 heading references a significant word from the title")
		}
	}
}

// anyHeadingMatches reports whether any heading contains any of the
// words, case-insensitively.
func anyHeadingMatches(headings, words []string) bool {
	for _, h := range headings {
		lower := strings.ToLower(h)
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
	}
	return false
}

// FindDuplicateExcerpts groups the corpus by exact excerpt string and
// returns every excerpt shared by more than one file, mapped to the
// files sharing it. Files without an excerpt are not grouped; the
// required-field check already flags those.
func FindDuplicateExcerpts(paths []string) map[string][]string {
	byExcerpt := map[string][]string{}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		meta, _ := frontmatter.Parse(string(raw))
		if excerpt := meta["excerpt"]; excerpt != "" {
			byExcerpt[excerpt] = append(byExcerpt[excerpt], path)
		}
	}

	duplicates := map[string][]string{}
	for excerpt, files := range byExcerpt {
		if len(files) > 1 {
			duplicates[excerpt] = files
		}
	}
	return duplicates
}
