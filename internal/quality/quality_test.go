package quality

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Fixture helpers
// =============================================================================

// words returns n whitespace-separated filler words.
func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%d", i%7)
	}
	return strings.Join(parts, " ")
}

// articleMeta builds a complete front-matter block.
func articleMeta(title, date, excerpt string) string {
	return "---\n" +
		fmt.Sprintf("title: %q\n", title) +
		fmt.Sprintf("date: %q\n", date) +
		fmt.Sprintf("excerpt: %q\n", excerpt) +
		"category: \"Revenue\"\n" +
		"author: \"Jane Doe\"\n" +
		"coverImage: \"/images/blog/cover.jpg\"\n" +
		"---\n"
}

// goodArticle builds a document that passes every check.
func goodArticle() string {
	excerpt := strings.Repeat("e", 180)
	body := "## Revenue Management Basics\n\n" + words(330) + "\n\n" +
		"## Pricing Signals Worth Tracking\n\n" + words(330) + "\n\n" +
		"## Forecasting Demand By Segment\n\n" + words(330) + "\n\n" +
		"## Where Hotels Leave Money Behind\n\n" + words(330) + "\n"
	return articleMeta("Revenue Management", "2024-03-18", excerpt) + body
}

// =============================================================================
// Text helpers
// =============================================================================

func TestCountWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"plain words", "one two three", 3},
		{"heading markers stripped", "## Two Words\n\nbody text", 4},
		{"image removed entirely", "before ![alt text](/img/a.jpg) after", 2},
		{"link collapses to anchor text", "see [the guide](/blog/guide) now", 4},
		{"emphasis markers stripped", "*one* **two** `three`", 3},
		{"empty body", "", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CountWords(tt.body))
		})
	}
}

func TestHeadings(t *testing.T) {
	t.Parallel()

	body := "# Title\n## First Section\ntext\n### Detail One\n## Second Section\n#### Deeper\n"
	h2, h3 := Headings(body)

	assert.Equal(t, []string{"First Section", "Second Section"}, h2)
	assert.Equal(t, []string{"Detail One"}, h3)
}

func TestSignificantWords(t *testing.T) {
	t.Parallel()

	// "the" and "for" are stop words, "of" is too short.
	got := SignificantWords("The Future of Pricing for Hotels")
	assert.Equal(t, []string{"future", "pricing", "hotels"}, got)
}

func TestInternalLinks(t *testing.T) {
	t.Parallel()

	body := "[a](/blog/first) [b](../about) [c](/contact) " +
		"[d](https://example.com/blog/elsewhere) [e](https://example.com) " +
		"![img](/images/pic.jpg)"

	// /blog/ substring matches the external blog URL too; the image is not a link.
	assert.Equal(t, 4, InternalLinks(body))
}

// =============================================================================
// Per-file checks
// =============================================================================

func TestValidateFile_PassingArticle(t *testing.T) {
	t.Parallel()

	report := New(DefaultOptions()).ValidateFile("good.md", goodArticle())

	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Warnings)
	assert.GreaterOrEqual(t, report.Stats.WordCount, 1200)
	assert.Equal(t, 4, report.Stats.H2Count)
	assert.Equal(t, 180, report.Stats.ExcerptLength)
}

func TestValidateFile_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	report := New(DefaultOptions()).ValidateFile("bare.md", "just a body, no front-matter")

	assert.False(t, report.Passed)
	for _, field := range RequiredFields {
		assert.Contains(t, report.Issues, fmt.Sprintf("missing required front-matter field %q", field))
	}
}

func TestValidateFile_WordCountBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wordCount int
		wantIssue bool
	}{
		{"one word short", 1199, true},
		{"exactly at minimum", 1200, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := articleMeta("Counting Things", "2024-01-01", strings.Repeat("e", 160)) + words(tt.wordCount)
			report := New(DefaultOptions()).ValidateFile("count.md", raw)

			found := false
			for _, issue := range report.Issues {
				if strings.Contains(issue, "word count too low") {
					found = true
				}
			}
			assert.Equal(t, tt.wantIssue, found)
		})
	}
}

func TestValidateFile_ExcerptLengthBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length   int
		wantWarn bool
	}{
		{149, true},
		{150, false},
		{200, false},
		{201, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("length_%d", tt.length), func(t *testing.T) {
			t.Parallel()

			raw := articleMeta("Boundary Checks", "2024-01-01", strings.Repeat("e", tt.length)) + words(1300)
			report := New(DefaultOptions()).ValidateFile("excerpt.md", raw)

			found := false
			for _, w := range report.Warnings {
				if strings.Contains(w, "excerpt length") {
					found = true
				}
			}
			assert.Equal(t, tt.wantWarn, found)
			assert.Equal(t, tt.length, report.Stats.ExcerptLength)
		})
	}
}

func TestValidateFile_BannedPhrase(t *testing.T) {
	t.Parallel()

	raw := goodArticle() + "\nThis topic stands out as a pivotal subject today.\n"
	report := New(DefaultOptions()).ValidateFile("cliche.md", raw)

	assert.False(t, report.Passed)
	assert.Contains(t, report.Issues, `banned template phrase "stands out as a pivotal subject"`)
}

func TestValidateFile_ParaphraseIsNotFlagged(t *testing.T) {
	t.Parallel()

	raw := goodArticle() + "\nThis topic is widely seen as a pivotal one.\n"
	report := New(DefaultOptions()).ValidateFile("fine.md", raw)

	for _, issue := range report.Issues {
		assert.NotContains(t, issue, "banned template phrase")
	}
}

func TestValidateFile_GenericHeading(t *testing.T) {
	t.Parallel()

	raw := goodArticle() + "\n## Conclusion\n\nclosing words\n"
	report := New(DefaultOptions()).ValidateFile("generic.md", raw)

	assert.False(t, report.Passed)
	assert.Contains(t, report.Issues, `generic heading "Conclusion"`)
}

func TestValidateFile_FewHeadingsWarns(t *testing.T) {
	t.Parallel()

	raw := articleMeta("Sparse Sections", "2024-01-01", strings.Repeat("e", 160)) +
		"## Sparse Sections Explained\n\n" + words(1300)
	report := New(DefaultOptions()).ValidateFile("sparse.md", raw)

	assert.True(t, report.Passed, "heading count is advisory only")
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "H2 headings") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateFile_OffTopicHeadingsWarn(t *testing.T) {
	t.Parallel()

	raw := articleMeta("Revenue Management", "2024-01-01", strings.Repeat("e", 160)) +
		"## Completely Unrelated Things\n\n" + words(650) +
		"\n\n## More Unrelated Matter\n\n## Still Nothing Relevant\n\n## Another Bland Section\n\n" + words(650)
	report := New(DefaultOptions()).ValidateFile("offtopic.md", raw)

	assert.Contains(t, report.Warnings, "no H2 heading references a significant word from the title")
}

// =============================================================================
// Corpus checks
// =============================================================================

func TestFindDuplicateExcerpts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	shared := strings.Repeat("s", 160)
	distinct := strings.Repeat("d", 160)

	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	c := filepath.Join(dir, "c.md")
	require.NoError(t, os.WriteFile(a, []byte(articleMeta("A", "2024-01-01", shared)+"body"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(articleMeta("B", "2024-01-02", shared)+"body"), 0o600))
	require.NoError(t, os.WriteFile(c, []byte(articleMeta("C", "2024-01-03", distinct)+"body"), 0o600))

	dups := FindDuplicateExcerpts([]string{a, b, c})

	require.Len(t, dups, 1)
	assert.ElementsMatch(t, []string{a, b}, dups[shared])
}

func TestValidateAll_BatchFailureModes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	require.NoError(t, os.WriteFile(good, []byte(goodArticle()), 0o600))

	t.Run("all passing", func(t *testing.T) {
		t.Parallel()
		batch := New(DefaultOptions()).ValidateAll([]string{good})
		assert.False(t, batch.Failed())
		assert.Equal(t, 1, batch.PassedCount())
		assert.Zero(t, batch.FailedCount())
	})

	t.Run("unreadable file fails but does not abort", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(dir, "absent.md")
		batch := New(DefaultOptions()).ValidateAll([]string{missing, good})

		require.Len(t, batch.Reports, 2)
		assert.True(t, batch.Failed())
		assert.False(t, batch.Reports[0].Passed)
		assert.Contains(t, batch.Reports[0].Issues[0], "cannot read file")
		assert.True(t, batch.Reports[1].Passed)
	})

	t.Run("duplicate excerpts fail the batch", func(t *testing.T) {
		t.Parallel()
		dupDir := t.TempDir()
		x := filepath.Join(dupDir, "x.md")
		y := filepath.Join(dupDir, "y.md")
		require.NoError(t, os.WriteFile(x, []byte(goodArticle()), 0o600))
		require.NoError(t, os.WriteFile(y, []byte(goodArticle()), 0o600))

		batch := New(DefaultOptions()).ValidateAll([]string{x, y})
		assert.True(t, batch.Failed(), "shared excerpt sinks the batch even with clean per-file reports")
		assert.Len(t, batch.DuplicateExcerpts, 1)
	})
}

func TestOptionsOverrides(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions().
		WithMinWordCount(10).
		WithExtraPhrases([]string{"house style violation"}).
		WithExtraHeadings([]string{"Musings"})

	assert.Equal(t, 10, opts.MinWordCount)
	assert.Contains(t, opts.BannedPhrases, "house style violation")
	assert.Contains(t, opts.BannedHeadings, "Musings")

	raw := articleMeta("Short Is Fine", "2024-01-01", strings.Repeat("e", 160)) +
		"## Short Is Fine Here\n\nthese eleven words are quite enough for the lowered minimum\n"
	report := New(opts).ValidateFile("short.md", raw)
	assert.True(t, report.Passed)
}

// =============================================================================
// Streaming
// =============================================================================

func TestStream_EmitsEveryReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := make([]string, 3)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("p%d.md", i))
		require.NoError(t, os.WriteFile(paths[i], []byte(goodArticle()), 0o600))
	}

	var got []Report
	for r := range New(DefaultOptions()).Stream(context.Background(), paths) {
		got = append(got, r)
	}

	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, paths[i], r.File)
	}
}

// TestStream_CancelWithoutConsumer verifies the worker goroutine shuts
// down when the context is canceled even if nobody ever reads a report;
// a quit mid-validation must not strand the sender on the channel.
func TestStream_CancelWithoutConsumer(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("p%d.md", i))
		require.NoError(t, os.WriteFile(paths[i], []byte(goodArticle()), 0o600))
	}

	baseline := runtime.NumGoroutine()

	ctx, cancel := context.WithCancel(context.Background())
	_ = New(DefaultOptions()).Stream(ctx, paths)
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= baseline {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("stream worker did not exit after cancellation")
}
