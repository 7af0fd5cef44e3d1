package tender

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var budgetPattern = regexp.MustCompile(`\d[\d,]*`)

// deadlineFormats is tried in order; the first successful parse wins.
var deadlineFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
}

// ParseBudget extracts the first run of digits (allowing comma thousand
// separators) from free-form budget text. It reports false when the text
// holds no amount at all. No currency conversion is attempted; callers
// compare budgets only within a single currency context.
func ParseBudget(text string) (float64, bool) {
	compact := strings.ReplaceAll(strings.TrimSpace(text), " ", "")
	if compact == "" {
		return 0, false
	}

	match := budgetPattern.FindString(compact)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// ParseDeadline parses free-form deadline text against a fixed, ordered
// list of date formats. It reports false when every format fails.
func ParseDeadline(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, format := range deadlineFormats {
		if parsed, err := time.Parse(format, trimmed); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// NormalizeField trims extractor output and maps well-known placeholder
// values ("Not specified", "N/A", ...) to the empty string.
func NormalizeField(text string) string {
	trimmed := strings.TrimSpace(text)
	if _, ok := placeholders[strings.ToLower(trimmed)]; ok {
		return ""
	}
	return trimmed
}
