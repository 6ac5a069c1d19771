// Package scanner finds content files in a directory tree.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// contentExtensions are the file extensions treated as post content.
var contentExtensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// FindContentFiles walks a directory and returns all markdown file paths.
// It skips hidden directories (starting with .) like .git.
func FindContentFiles(root string) ([]string, error) {
	var files []string

	// filepath.WalkDir traverses a directory tree
	// It calls the function we provide for each file/directory it finds
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		// If there was an error accessing this path, return it
		if err != nil {
			return err
		}

		// Skip hidden directories (like .git, .github, etc.)
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != root {
			// filepath.SkipDir tells WalkDir to skip this entire directory
			return filepath.SkipDir
		}

		if !d.IsDir() && contentExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			files = append(files, path)
		}

		return nil
	})

	// In Go, we always return the error to let the caller decide how to handle it
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ScanOptions holds options for scanning content with filtering.
type ScanOptions struct {
	// Root is the directory to scan.
	Root string

	// Include patterns (glob) - if set, only matching files are included.
	Include []string

	// Exclude patterns (glob) - matching files are excluded.
	Exclude []string
}

// FindContentFilesWithOptions scans for content files with include/exclude
// filtering. This is the recommended function for scanning with full
// configuration support.
func FindContentFilesWithOptions(opts ScanOptions) ([]string, error) {
	files, err := FindContentFiles(opts.Root)
	if err != nil {
		return nil, err
	}

	// Apply include filter (if any patterns specified)
	if len(opts.Include) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Include, true)
		if err != nil {
			return nil, err
		}
	}

	// Apply exclude filter
	if len(opts.Exclude) > 0 {
		files, err = filterByGlobPatterns(files, opts.Root, opts.Exclude, false)
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// filterByGlobPatterns filters files by glob patterns.
// If include=true, keeps only files matching any pattern.
// If include=false, removes files matching any pattern.
func filterByGlobPatterns(files []string, root string, patterns []string, include bool) ([]string, error) {
	if len(patterns) == 0 {
		return files, nil
	}

	// Compile patterns
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, g)
	}

	result := make([]string, 0, len(files))
	for _, f := range files {
		// Get relative path for matching (relative to root)
		relPath, err := filepath.Rel(root, f)
		if err != nil {
			relPath = f // Fall back to absolute path
		}
		// Normalize path separators for cross-platform glob matching
		relPath = filepath.ToSlash(relPath)

		matches := matchesAnyGlob(relPath, compiled)

		// For include mode: keep files that match any pattern
		// For exclude mode: keep files that don't match any pattern
		if include && matches {
			result = append(result, f)
		} else if !include && !matches {
			result = append(result, f)
		}
	}

	return result, nil
}

// matchesAnyGlob checks if a path matches any of the compiled glob patterns.
func matchesAnyGlob(path string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(path) {
			return true
		}
	}
	return false
}
