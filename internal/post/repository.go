package post

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/copydesk/copydesk/internal/frontmatter"
	"github.com/copydesk/copydesk/internal/markdown"
)

// Extension is the file extension a content file must carry.
const Extension = ".md"

// Repository reads posts from a single content directory.
// The slug of a post is its filename without the extension.
type Repository struct {
	Dir string
}

// NewRepository returns a repository over the given content directory.
func NewRepository(dir string) *Repository {
	return &Repository{Dir: dir}
}

// List returns summary records for every markdown file in the content
// directory, sorted by date descending. Missing front-matter fields are
// filled with defaults, so every returned record is fully populated.
//
// A missing content directory yields an empty list, not an error. Files
// that cannot be read are skipped.
func (r *Repository) List() ([]Post, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading content directory: %w", err)
	}

	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(r.Dir, entry.Name()))
		if err != nil {
			continue
		}

		meta, _ := frontmatter.Parse(string(raw))
		slug := strings.TrimSuffix(entry.Name(), Extension)
		posts = append(posts, newSummary(slug, meta))
	}

	// ISO 8601 date strings order correctly as plain strings.
	// Tie order between equal dates is not guaranteed.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})

	return posts, nil
}

// Get returns the full record for one slug, including the raw body and
// its rendered HTML. Front-matter is passed through verbatim: unlike
// List, no defaults are applied, so a post without a title really does
// come back with an empty one. Callers rely on that to distinguish
// sparse front-matter from defaulted listings.
func (r *Repository) Get(slug string) (Post, error) {
	path := filepath.Join(r.Dir, slug+Extension)

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Post{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return Post{}, fmt.Errorf("reading post %s: %w", slug, err)
	}

	meta, body := frontmatter.Parse(string(raw))

	html, err := markdown.Render(body)
	if err != nil {
		return Post{}, fmt.Errorf("rendering post %s: %w", slug, err)
	}

	return Post{
		Slug:        slug,
		Title:       meta["title"],
		Date:        meta["date"],
		Excerpt:     meta["excerpt"],
		Category:    meta["category"],
		Author:      meta["author"],
		CoverImage:  meta["coverImage"],
		Body:        body,
		ContentHTML: html,
	}, nil
}
