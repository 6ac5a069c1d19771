// Package frontmatter parses the metadata header block at the top of a
// content file. The block is delimited by lines containing exactly "---"
// and holds one "key: value" pair per line.
//
// The parser is deliberately minimal and lenient: it is not YAML. Values
// are plain strings, optionally wrapped in matching single or double
// quotes. Multi-line values, nesting, and escaping are not supported, and
// a document without a well-formed block degrades to "no metadata, whole
// text is body" rather than an error. Unknown keys are kept as-is; it is
// the caller's job to ignore fields it does not understand.
package frontmatter

import (
	"regexp"
	"strings"
)

// blockRegex matches a front-matter block at the start of a document:
// an opening "---" line, the metadata lines, a closing "---" line, and
// the rest of the document as body. (?s) lets the captures span newlines.
// Trailing \r is tolerated so CRLF content parses the same as LF.
var blockRegex = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\r?\n(.*)$`)

// Parse splits a raw document into its metadata map and body text.
//
// If the document does not start with a front-matter block, the returned
// map is empty and body is the input unchanged. There is no error path.
func Parse(raw string) (map[string]string, string) {
	meta := map[string]string{}

	matches := blockRegex.FindStringSubmatch(raw)
	if matches == nil {
		return meta, raw
	}

	for _, line := range strings.Split(matches[1], "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			// Lines without a colon contribute nothing.
			continue
		}
		meta[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	return meta, matches[2]
}

// unquote strips one pair of matching surrounding quotes, if present.
// Mismatched quotes are left alone.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
