package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates the given files (relative paths) under a fresh temp dir.
func writeFiles(t *testing.T, paths ...string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(tmpDir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("# Content"), 0o644))
	}
	return tmpDir
}

func TestFindContentFiles(t *testing.T) {
	t.Parallel()

	t.Run("SingleFile", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")
	})

	t.Run("IgnoresOtherExtensions", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "post.md", "draft.mdx", "notes.txt", "data.json")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 2)

		for _, f := range files {
			ext := filepath.Ext(f)
			assert.True(t, ext == ".md" || ext == ".mdx", "unexpected extension: %s", f)
		}
	})

	t.Run("MarkdownVariants", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "a.md", "b.mdx", "c.markdown")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("NestedDirectories", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "root.md", "2025/january/nested.md")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 2)

		var names []string
		for _, f := range files {
			names = append(names, filepath.Base(f))
		}
		sort.Strings(names)
		assert.Equal(t, []string{"nested.md", "root.md"}, names)
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		t.Parallel()
		files, err := FindContentFiles(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("SkipsHiddenDirectories", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "visible.md", ".git/ignored.md", ".obsidian/notes.md")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "visible.md")
	})

	t.Run("MixedCaseExtensions", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "lower.md", "UPPER.MD", "Mixed.Md")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("InvalidPath", func(t *testing.T) {
		t.Parallel()
		files, err := FindContentFiles(filepath.Join(t.TempDir(), "nonexistent"))
		assert.Error(t, err)
		assert.Nil(t, files)
	})

	t.Run("SingleFileAsRoot", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md")
		files, err := FindContentFiles(filepath.Join(dir, "welcome.md"))
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")
	})

	t.Run("DeeplyNested", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "a/b/c/d/deep.md")
		files, err := FindContentFiles(dir)
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "deep.md")
	})
}

func TestFindContentFilesWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("BasicScan", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "one.md", "two.md")
		files, err := FindContentFilesWithOptions(ScanOptions{Root: dir})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("WithIncludePattern", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "posts/welcome.md", "pages/about.md", "root.md")

		// Only include files in posts/**
		files, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Include: []string{"posts/**"},
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")
	})

	t.Run("WithExcludePattern", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md", "drafts/wip.md")

		files, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Exclude: []string{"drafts/**"},
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")

		for _, f := range files {
			assert.NotContains(t, f, "drafts")
		}
	})

	t.Run("WithBothIncludeAndExclude", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "posts/welcome.md", "posts/drafts/wip.md", "other.md")

		// Include posts/**, but exclude **/drafts/**
		files, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Include: []string{"posts/**"},
			Exclude: []string{"**/drafts/**"},
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")
	})

	t.Run("MultipleExcludePatterns", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md", "archive/old.md", "templates/base.md")

		files, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Exclude: []string{"archive/**", "templates/**"},
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")
	})

	t.Run("EmptyIncludeReturnsAll", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "one.md", "two.md")
		files, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Include: []string{}, // Empty means no filtering
		})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("SpecificFilePattern", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md", "other.md")

		files, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Include: []string{"welcome.md"},
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Contains(t, files[0], "welcome.md")
	})

	t.Run("InvalidIncludePattern", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md")
		_, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Include: []string{"[invalid"},
		})
		assert.Error(t, err)
	})

	t.Run("InvalidExcludePattern", func(t *testing.T) {
		t.Parallel()
		dir := writeFiles(t, "welcome.md")
		_, err := FindContentFilesWithOptions(ScanOptions{
			Root:    dir,
			Exclude: []string{"[invalid"},
		})
		assert.Error(t, err)
	})
}
