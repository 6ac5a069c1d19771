// Package markdown converts a post's markdown body to semantic HTML.
// The conversion is delegated to goldmark with the GFM extensions, so
// headings, lists, blockquotes, fenced code, links, tables, and inline
// formatting all map to their usual tags, and special characters in text
// content are escaped to HTML entities.
//
// No sanitization happens here beyond that escaping: the renderer only
// ever sees first-party authored content.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the shared converter. goldmark.Markdown is safe for concurrent use.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, autolinks, task lists
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(), // single newlines inside a paragraph become <br>
	),
)

// Render converts a markdown body to HTML.
// A conversion failure is returned to the caller; there is no fallback.
func Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
