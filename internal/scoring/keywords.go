package scoring

import "strings"

// Matcher classifies free text against a rule set. The scoring pipeline
// only depends on this interface, so the matching strategy can be
// swapped without touching the score computation.
type Matcher interface {
	// Matches reports whether any rule applies to the text.
	Matches(text string) bool
	// Hits returns how many rules apply to the text.
	Hits(text string) int
}

// substringMatcher matches keywords as case-insensitive substrings.
type substringMatcher struct {
	keywords []string
}

// NewKeywordMatcher builds the default substring-based matcher.
func NewKeywordMatcher(keywords []string) Matcher {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			lowered = append(lowered, keyword)
		}
	}
	return &substringMatcher{keywords: lowered}
}

func (m *substringMatcher) Matches(text string) bool {
	return m.Hits(text) > 0
}

func (m *substringMatcher) Hits(text string) int {
	lowered := strings.ToLower(text)
	hits := 0
	for _, keyword := range m.keywords {
		if strings.Contains(lowered, keyword) {
			hits++
		}
	}
	return hits
}
