// Package seo audits a curated list of posts for search-engine
// readiness: keyword density and placement, heading volume, internal
// linking, featured-snippet heuristics, and excerpt uniqueness across
// the target list.
//
// Unlike the quality validator this one does not scan a directory; it
// runs over an explicitly named target list, because it encodes
// knowledge of which posts are meant to cross-link each other.
package seo

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/copydesk/copydesk/internal/frontmatter"
	"github.com/copydesk/copydesk/internal/quality"
)

// Default thresholds for the SEO checks.
const (
	DefaultMinDensity = 0.5 // percent
	DefaultMaxDensity = 3.0

	DefaultMinH2 = 4
	DefaultMaxH2 = 8
	DefaultMinH3 = 6

	DefaultMinInternalLinks = 2
	DefaultMaxInternalLinks = 6

	// IntroWords is the size of the "introduction" region: the first
	// words of the body, heading lines excluded.
	IntroWords = 200

	// ConclusionWords is the size of the fallback "conclusion" region
	// when the post has no explicit Conclusion section.
	ConclusionWords = 150
)

// interrogatives are the words that make an H2 a question, and thus a
// featured-snippet candidate.
var interrogatives = []string{"what", "how", "why", "when", "where", "which"}

var numberedListRegex = regexp.MustCompile(`\d+\. `)

// Options configures the SEO validator thresholds.
type Options struct {
	MinDensity float64
	MaxDensity float64

	MinH2 int
	MaxH2 int
	MinH3 int

	MinInternalLinks int
	MaxInternalLinks int
}

// DefaultOptions returns the standard SEO thresholds.
func DefaultOptions() Options {
	return Options{
		MinDensity:       DefaultMinDensity,
		MaxDensity:       DefaultMaxDensity,
		MinH2:            DefaultMinH2,
		MaxH2:            DefaultMaxH2,
		MinH3:            DefaultMinH3,
		MinInternalLinks: DefaultMinInternalLinks,
		MaxInternalLinks: DefaultMaxInternalLinks,
	}
}

// Metrics holds the measurements computed for one target file.
type Metrics struct {
	Keyword             string
	Density             float64
	KeywordInIntro      bool
	KeywordInHeading    bool
	KeywordInConclusion bool
	WordCount           int
	H2Count             int
	H3Count             int
	InternalLinks       int
	SnippetReady        bool
	ExcerptUnique       bool
}

// Report is the outcome of auditing a single target file.
type Report struct {
	File     string
	Passed   bool
	Issues   []string
	Warnings []string
	Metrics  Metrics
}

// BatchResult aggregates a full target-list run.
type BatchResult struct {
	Reports           []Report
	DuplicateExcerpts map[string][]string
}

// Failed reports whether the batch as a whole failed.
func (b BatchResult) Failed() bool {
	for _, r := range b.Reports {
		if !r.Passed {
			return true
		}
	}
	return false
}

// PassedCount returns how many targets passed.
func (b BatchResult) PassedCount() int {
	n := 0
	for _, r := range b.Reports {
		if r.Passed {
			n++
		}
	}
	return n
}

// FailedCount returns how many targets failed.
func (b BatchResult) FailedCount() int {
	return len(b.Reports) - b.PassedCount()
}

// Validator runs the SEO rule set over a target list.
type Validator struct {
	opts Options
}

// New creates a Validator with the given options.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// ValidateTargets audits each named file (resolved against dir). A
// target missing from disk yields a failed report with zeroed metrics;
// it never aborts the batch.
func (v *Validator) ValidateTargets(dir string, targets []string) BatchResult {
	// First pass: excerpt map across the whole target list, so each
	// file's uniqueness check can consult it read-only.
	excerpts := map[string][]string{}
	for _, name := range targets {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		meta, _ := frontmatter.Parse(string(raw))
		if e := meta["excerpt"]; e != "" {
			excerpts[e] = append(excerpts[e], name)
		}
	}

	duplicates := map[string][]string{}
	for e, files := range excerpts {
		if len(files) > 1 {
			duplicates[e] = files
		}
	}

	reports := make([]Report, 0, len(targets))
	for _, name := range targets {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			reports = append(reports, Report{
				File:   name,
				Issues: []string{"File not found"},
			})
			continue
		}
		reports = append(reports, v.validate(name, string(raw), duplicates))
	}

	return BatchResult{Reports: reports, DuplicateExcerpts: duplicates}
}

// validate audits one target against the shared excerpt map.
func (v *Validator) validate(name, raw string, duplicates map[string][]string) Report {
	meta, body := frontmatter.Parse(raw)
	report := Report{File: name}
	m := &report.Metrics

	m.Keyword = PrimaryKeyword(meta["title"])
	m.WordCount = len(Tokenize(body))

	h2, h3 := quality.Headings(body)
	m.H2Count = len(h2)
	m.H3Count = len(h3)

	v.checkDensity(&report, body)
	v.checkPlacement(&report, body, h2)
	v.checkHeadingVolume(&report)
	v.checkInternalLinks(&report, body)
	m.SnippetReady = snippetReady(body, h2)
	v.checkExcerptUniqueness(&report, meta["excerpt"], duplicates)

	report.Passed = len(report.Issues) == 0
	return report
}

func (v *Validator) checkDensity(report *Report, body string) {
	m := &report.Metrics
	if m.Keyword == "" {
		report.Warnings = append(report.Warnings,
			"could not derive a primary keyword from the title")
		return
	}

	m.Density = Density(body, m.Keyword)
	switch {
	case m.Density < v.opts.MinDensity:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("keyword density %.2f%% below %.1f%%", m.Density, v.opts.MinDensity))
	case m.Density > v.opts.MaxDensity:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("keyword density %.2f%% above %.1f%%", m.Density, v.opts.MaxDensity))
	}
}

func (v *Validator) checkPlacement(report *Report, body string, h2 []string) {
	m := &report.Metrics
	if m.Keyword == "" {
		return
	}

	m.KeywordInIntro = strings.Contains(strings.ToLower(introduction(body)), m.Keyword)
	if !m.KeywordInIntro {
		report.Warnings = append(report.Warnings, "primary keyword missing from the introduction")
	}

	for _, h := range h2 {
		if strings.Contains(strings.ToLower(h), m.Keyword) {
			m.KeywordInHeading = true
			break
		}
	}
	if !m.KeywordInHeading {
		report.Warnings = append(report.Warnings, "primary keyword missing from all H2 headings")
	}

	m.KeywordInConclusion = strings.Contains(strings.ToLower(conclusion(body)), m.Keyword)
	if !m.KeywordInConclusion {
		report.Warnings = append(report.Warnings, "primary keyword missing from the conclusion")
	}
}

func (v *Validator) checkHeadingVolume(report *Report) {
	m := report.Metrics
	if m.H2Count < v.opts.MinH2 || m.H2Count > v.opts.MaxH2 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("H2 count %d outside recommended range %d-%d", m.H2Count, v.opts.MinH2, v.opts.MaxH2))
	}
	if m.H3Count < v.opts.MinH3 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("only %d H3 headings (recommended at least %d)", m.H3Count, v.opts.MinH3))
	}
}

func (v *Validator) checkInternalLinks(report *Report, body string) {
	count := quality.InternalLinks(body)
	report.Metrics.InternalLinks = count

	switch {
	case count == 0:
		report.Warnings = append(report.Warnings, "no internal links")
	case count == 1:
		report.Warnings = append(report.Warnings, "only one internal link")
	case count > v.opts.MaxInternalLinks:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("too many internal links: %d (recommended at most %d)", count, v.opts.MaxInternalLinks))
	}
}

func (v *Validator) checkExcerptUniqueness(report *Report, excerpt string, duplicates map[string][]string) {
	m := &report.Metrics
	m.ExcerptUnique = true

	files, shared := duplicates[excerpt]
	if excerpt == "" || !shared {
		return
	}

	m.ExcerptUnique = false
	others := make([]string, 0, len(files)-1)
	for _, f := range files {
		if f != report.File {
			others = append(others, f)
		}
	}
	report.Issues = append(report.Issues,
		fmt.Sprintf("excerpt shared with %s", strings.Join(others, ", ")))
}

// introduction returns the first IntroWords words of the body,
// skipping heading lines.
func introduction(body string) string {
	var words []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
		if len(words) >= IntroWords {
			words = words[:IntroWords]
			break
		}
	}
	return strings.Join(words, " ")
}

// conclusion returns the explicit "## Conclusion" section if the body
// has one, otherwise the last ConclusionWords words of the body.
func conclusion(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		text := strings.TrimSpace(strings.TrimPrefix(line, "## "))
		if strings.HasPrefix(line, "## ") && strings.EqualFold(text, "Conclusion") {
			var section []string
			for _, rest := range lines[i+1:] {
				if strings.HasPrefix(rest, "## ") {
					break
				}
				section = append(section, rest)
			}
			return strings.Join(section, "\n")
		}
	}

	words := strings.Fields(body)
	if len(words) > ConclusionWords {
		words = words[len(words)-ConclusionWords:]
	}
	return strings.Join(words, " ")
}

// snippetReady reports whether the post has a shot at a featured
// snippet: a question-style H2 or a numbered list anywhere in the body.
func snippetReady(body string, h2 []string) bool {
	for _, h := range h2 {
		first := leadingWord(strings.ToLower(h))
		for _, q := range interrogatives {
			if first == q {
				return true
			}
		}
	}
	return numberedListRegex.MatchString(body)
}

// leadingWord returns the run of letters at the start of s, so that
// "what's driving revpar?" and a bare "why?" both yield their
// interrogative while "whenever" stays whole.
func leadingWord(s string) string {
	for i, r := range s {
		if r < 'a' || r > 'z' {
			return s[:i]
		}
	}
	return s
}
