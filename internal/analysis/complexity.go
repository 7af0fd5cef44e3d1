package analysis

import "github.com/ermekov/tenderscope/internal/scoring"

const (
	complexityHigh    = 8
	complexityMedium  = 5
	complexityLow     = 3
	complexityDefault = 4

	minComplexity = 1
	maxComplexity = 10
)

// Complexity buckets are a coarse, explainable keyword heuristic, not a
// learned model. Ordering matters: the first bucket that matches wins.
var complexityBuckets = []struct {
	matcher scoring.Matcher
	score   int
}{
	{matcher: scoring.NewKeywordMatcher([]string{"automation", "bim", "hvac", "deep foundation"}), score: complexityHigh},
	{matcher: scoring.NewKeywordMatcher([]string{"roof", "paving", "electrical"}), score: complexityMedium},
	{matcher: scoring.NewKeywordMatcher([]string{"painting", "doors"}), score: complexityLow},
}

// EstimateComplexity derives a 1-10 severity from technical spec text.
func EstimateComplexity(text string) int {
	for _, bucket := range complexityBuckets {
		if bucket.matcher.Matches(text) {
			return bucket.score
		}
	}
	return complexityDefault
}

func clampComplexity(value int) int {
	if value < minComplexity {
		return minComplexity
	}
	if value > maxComplexity {
		return maxComplexity
	}
	return value
}
