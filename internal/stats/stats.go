// Package stats provides performance tracking and corpus statistics for
// content validation runs. It captures timing for each phase of execution,
// memory usage, and aggregate numbers about the validated posts.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Stats holds performance metrics for a validation session.
type Stats struct {
	// Timing for each phase
	ScanStart     time.Time
	ScanEnd       time.Time
	ValidateStart time.Time
	ValidateEnd   time.Time

	// Counts
	FilesScanned   int
	PostsValidated int
	TotalWords     int
	TotalH2        int
	TotalH3        int
	TotalIssues    int
	TotalWarnings  int

	// SEO metrics (recorded only by SEO audits)
	SEOSamples         int
	TotalDensity       float64
	TotalInternalLinks int

	// Memory stats (captured at end)
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	NumGoroutine int
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// StartScan marks the beginning of the file scanning phase.
func (s *Stats) StartScan() {
	s.ScanStart = time.Now()
}

// EndScan marks the end of the file scanning phase.
func (s *Stats) EndScan(filesFound int) {
	s.ScanEnd = time.Now()
	s.FilesScanned = filesFound
}

// StartValidate marks the beginning of the validation phase.
func (s *Stats) StartValidate() {
	s.ValidateStart = time.Now()
}

// EndValidate marks the end of the validation phase and captures memory stats.
func (s *Stats) EndValidate() {
	s.ValidateEnd = time.Now()
	s.captureMemoryStats()
}

// RecordPost accumulates per-post numbers into the corpus totals.
func (s *Stats) RecordPost(words, h2, h3, issues, warnings int) {
	s.PostsValidated++
	s.TotalWords += words
	s.TotalH2 += h2
	s.TotalH3 += h3
	s.TotalIssues += issues
	s.TotalWarnings += warnings
}

// RecordSEO accumulates the SEO-only metrics for one audited post.
// Called alongside RecordPost by the SEO audit.
func (s *Stats) RecordSEO(density float64, internalLinks int) {
	s.SEOSamples++
	s.TotalDensity += density
	s.TotalInternalLinks += internalLinks
}

// captureMemoryStats reads current memory statistics from runtime.
func (s *Stats) captureMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
	s.NumGoroutine = runtime.NumGoroutine()
}

// ScanDuration returns the time spent scanning for files.
func (s *Stats) ScanDuration() time.Duration {
	if s.ScanEnd.IsZero() {
		return 0
	}
	return s.ScanEnd.Sub(s.ScanStart)
}

// ValidateDuration returns the time spent validating posts.
func (s *Stats) ValidateDuration() time.Duration {
	if s.ValidateEnd.IsZero() {
		return 0
	}
	return s.ValidateEnd.Sub(s.ValidateStart)
}

// TotalDuration returns the total time from scan start to validation end.
func (s *Stats) TotalDuration() time.Duration {
	if s.ValidateEnd.IsZero() {
		return 0
	}
	return s.ValidateEnd.Sub(s.ScanStart)
}

// PostsPerSecond returns the throughput of the validation phase.
func (s *Stats) PostsPerSecond() float64 {
	dur := s.ValidateDuration()
	if dur == 0 || s.PostsValidated == 0 {
		return 0
	}
	return float64(s.PostsValidated) / dur.Seconds()
}

// AvgWords returns the mean word count across validated posts.
func (s *Stats) AvgWords() float64 {
	if s.PostsValidated == 0 {
		return 0
	}
	return float64(s.TotalWords) / float64(s.PostsValidated)
}

// AvgHeadings returns the mean H2 and H3 counts across validated posts.
func (s *Stats) AvgHeadings() (h2, h3 float64) {
	if s.PostsValidated == 0 {
		return 0, 0
	}
	n := float64(s.PostsValidated)
	return float64(s.TotalH2) / n, float64(s.TotalH3) / n
}

// AvgDensity returns the mean keyword density across audited posts.
func (s *Stats) AvgDensity() float64 {
	if s.SEOSamples == 0 {
		return 0
	}
	return s.TotalDensity / float64(s.SEOSamples)
}

// AvgInternalLinks returns the mean internal-link count across audited posts.
func (s *Stats) AvgInternalLinks() float64 {
	if s.SEOSamples == 0 {
		return 0
	}
	return float64(s.TotalInternalLinks) / float64(s.SEOSamples)
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns a formatted string representation of the stats.
func (s *Stats) String() string {
	var b strings.Builder

	total := s.TotalDuration()

	b.WriteString("\n=== Performance Statistics ===\n\n")

	// Timing breakdown
	b.WriteString("Timing:\n")
	b.WriteString(fmt.Sprintf("  Scan files:    %8s", FormatDuration(s.ScanDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ScanDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Validate:      %8s", FormatDuration(s.ValidateDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ValidateDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString("  ─────────────────────────\n")
	b.WriteString(fmt.Sprintf("  Total:         %8s\n", FormatDuration(total)))

	// Corpus
	avgH2, avgH3 := s.AvgHeadings()
	b.WriteString("\nCorpus:\n")
	b.WriteString(fmt.Sprintf("  Files scanned:     %5d\n", s.FilesScanned))
	b.WriteString(fmt.Sprintf("  Posts validated:   %5d\n", s.PostsValidated))
	b.WriteString(fmt.Sprintf("  Avg words:         %5.0f\n", s.AvgWords()))
	b.WriteString(fmt.Sprintf("  Avg H2 / H3:   %5.1f / %.1f\n", avgH2, avgH3))
	if s.SEOSamples > 0 {
		b.WriteString(fmt.Sprintf("  Avg density:       %5.2f%%\n", s.AvgDensity()))
		b.WriteString(fmt.Sprintf("  Avg int. links:    %5.1f\n", s.AvgInternalLinks()))
	}
	if s.TotalIssues > 0 {
		b.WriteString(fmt.Sprintf("  Issues:            %5d\n", s.TotalIssues))
	}
	if s.TotalWarnings > 0 {
		b.WriteString(fmt.Sprintf("  Warnings:          %5d\n", s.TotalWarnings))
	}
	b.WriteString(fmt.Sprintf("  Posts/second:      %5.1f\n", s.PostsPerSecond()))

	// Memory
	b.WriteString("\nMemory:\n")
	b.WriteString(fmt.Sprintf("  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc)))
	b.WriteString(fmt.Sprintf("  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc)))
	b.WriteString(fmt.Sprintf("  GC cycles:     %8d\n", s.NumGC))
	b.WriteString(fmt.Sprintf("  Goroutines:    %8d\n", s.NumGoroutine))

	return b.String()
}

// ToJSON returns a map suitable for JSON serialization.
func (s *Stats) ToJSON() map[string]any {
	avgH2, avgH3 := s.AvgHeadings()
	corpus := map[string]any{
		"files_scanned":    s.FilesScanned,
		"posts_validated":  s.PostsValidated,
		"avg_words":        s.AvgWords(),
		"avg_h2":           avgH2,
		"avg_h3":           avgH3,
		"issues":           s.TotalIssues,
		"warnings":         s.TotalWarnings,
		"posts_per_second": s.PostsPerSecond(),
	}
	if s.SEOSamples > 0 {
		corpus["avg_density"] = s.AvgDensity()
		corpus["avg_internal_links"] = s.AvgInternalLinks()
	}

	return map[string]any{
		"timing": map[string]any{
			"scan_ms":     s.ScanDuration().Milliseconds(),
			"validate_ms": s.ValidateDuration().Milliseconds(),
			"total_ms":    s.TotalDuration().Milliseconds(),
		},
		"corpus": corpus,
		"memory": map[string]any{
			"heap_bytes":  s.HeapAlloc,
			"total_bytes": s.TotalAlloc,
			"gc_cycles":   s.NumGC,
			"goroutines":  s.NumGoroutine,
		},
	}
}
