package quality

// The term lists below are editorial policy, not logic. They can be
// extended per project through the config file without touching the
// validation code.

// DefaultBannedPhrases are template clichés that must not appear in a
// post body. Matching is a case-sensitive substring test.
var DefaultBannedPhrases = []string{
	"In the rapidly evolving landscape",
	"In today's fast-paced world",
	"stands out as a pivotal subject",
	"delve into the intricacies",
	"plays a crucial role in",
	"unlock the full potential",
	"a testament to the power of",
	"In conclusion, it is evident that",
	"navigating the complexities of",
	"ever-changing landscape",
}

// DefaultBannedHeadings are generic section titles that say nothing
// about the article. An H2/H3 whose exact trimmed text matches one of
// these is a blocking issue.
var DefaultBannedHeadings = []string{
	"Introduction",
	"Overview",
	"Background",
	"Strategic Approaches",
	"Best Practices",
	"Key Considerations",
	"Key Takeaways",
	"Looking Ahead",
	"Final Thoughts",
	"Conclusion",
}

// stopWords are excluded when picking significant words from a title,
// both for the topic-heading check here and for keyword extraction in
// the SEO validator.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "for": true, "nor": true, "with": true, "your": true,
	"from": true, "that": true, "this": true, "these": true, "those": true,
	"what": true, "when": true, "where": true, "which": true, "how": true,
	"why": true, "who": true, "are": true, "is": true, "was": true,
	"will": true, "to": true, "of": true, "in": true, "on": true,
	"at": true, "it": true, "its": true, "as": true, "by": true,
	"be": true, "into": true, "about": true, "more": true, "most": true,
	"can": true, "should": true, "every": true, "their": true, "you": true,
}

// IsStopWord reports whether the lowercase word carries no topical meaning.
func IsStopWord(word string) bool {
	return stopWords[word]
}
