// Package post is the content repository: it turns a directory of
// markdown files with front-matter into an in-memory collection of post
// records. Posts are ephemeral and re-read from disk on every call, so
// the repository is always a pure function of the directory contents.
package post

import (
	"errors"
	"time"
)

// Defaults applied to the listing when a front-matter field is absent.
const (
	DefaultTitle      = "Untitled Post"
	DefaultCategory   = "Insights"
	DefaultAuthor     = "Arcadia Hospitality Advisory"
	DefaultCoverImage = "/images/blog/placeholder.jpg"
)

// ErrNotFound is returned by Get when no file matches the requested slug.
var ErrNotFound = errors.New("post not found")

// Post is a single content record.
//
// Summary fields come from front-matter. In listings every field is
// guaranteed non-empty by defaults; a post fetched individually carries
// its front-matter verbatim instead, empty fields included (see Get).
type Post struct {
	Slug       string `json:"slug" yaml:"slug"`
	Title      string `json:"title" yaml:"title"`
	Date       string `json:"date" yaml:"date"`
	Excerpt    string `json:"excerpt" yaml:"excerpt"`
	Category   string `json:"category" yaml:"category"`
	Author     string `json:"author" yaml:"author"`
	CoverImage string `json:"coverImage" yaml:"coverImage"`

	// Body is the raw markdown following the front-matter block.
	// Populated only by Get, never by List.
	Body string `json:"-" yaml:"-"`

	// ContentHTML is the rendered body. Populated only by Get.
	ContentHTML string `json:"contentHtml,omitempty" yaml:"contentHtml,omitempty"`
}

// newSummary builds a listing record from parsed front-matter,
// substituting defaults for anything missing.
func newSummary(slug string, meta map[string]string) Post {
	p := Post{
		Slug:       slug,
		Title:      meta["title"],
		Date:       meta["date"],
		Excerpt:    meta["excerpt"],
		Category:   meta["category"],
		Author:     meta["author"],
		CoverImage: meta["coverImage"],
	}

	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Date == "" {
		p.Date = time.Now().Format(time.RFC3339)
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.CoverImage == "" {
		p.CoverImage = DefaultCoverImage
	}

	return p
}
