package quality

import (
	"regexp"
	"strings"
)

// Markdown constructs stripped before counting words. Images disappear
// entirely; links collapse to their anchor text.
var (
	imageRegex  = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRegex   = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	markupRegex = regexp.MustCompile("[#*`_>~]")
)

// CountWords counts the whitespace-delimited prose tokens of a markdown
// body: images are removed, links are reduced to their anchor text, and
// markdown punctuation (including heading markers) is stripped first.
func CountWords(body string) int {
	text := imageRegex.ReplaceAllString(body, " ")
	text = linkRegex.ReplaceAllString(text, "$1")
	text = markupRegex.ReplaceAllString(text, "")
	return len(strings.Fields(text))
}

// Headings returns the trimmed text of every H2 ("## ") and H3 ("### ")
// line in the body, in document order.
func Headings(body string) (h2, h3 []string) {
	for _, line := range strings.Split(body, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			h3 = append(h3, strings.TrimSpace(strings.TrimPrefix(line, "### ")))
		case strings.HasPrefix(line, "## "):
			h2 = append(h2, strings.TrimSpace(strings.TrimPrefix(line, "## ")))
		}
	}
	return h2, h3
}

// SignificantWords returns the lowercase words of a title that are long
// enough (more than 3 characters) and not stop words. These are the
// words an on-topic H2 is expected to reuse.
func SignificantWords(title string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, `"'.,:;!?()`)
		if len(w) > 3 && !IsStopWord(w) {
			words = append(words, w)
		}
	}
	return words
}

// InternalLinks counts markdown links that point at another page of the
// same site: targets containing "/blog/" or starting with "/" or "../".
// Images are excluded.
func InternalLinks(body string) int {
	text := imageRegex.ReplaceAllString(body, " ")

	count := 0
	for _, m := range linkRegex.FindAllStringSubmatch(text, -1) {
		target := strings.TrimSpace(m[2])
		if strings.Contains(target, "/blog/") ||
			strings.HasPrefix(target, "/") ||
			strings.HasPrefix(target, "../") {
			count++
		}
	}
	return count
}
