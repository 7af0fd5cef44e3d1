package scoring

import (
	"time"

	"github.com/ermekov/tenderscope/internal/tender"
)

const (
	maxSubScore   = 10
	riskHitWeight = 2
)

// SubScores holds the five independent criteria scores, each in [0,10],
// and their sum in [0,50].
type SubScores struct {
	Sector   int `json:"sector_score"`
	Budget   int `json:"budget_score"`
	Location int `json:"location_score"`
	Deadline int `json:"deadline_score"`
	Risk     int `json:"risk_score"`
	Total    int `json:"total_score"`
}

// Engine scores one tender record against the company's preferences.
// It is stateless per call and safe for concurrent use.
type Engine struct {
	cfg      Config
	domain   Matcher
	location Matcher
	risk     Matcher
}

func NewEngine(cfg Config) *Engine {
	cfg = cfg.ApplyDefaults()
	return &Engine{
		cfg:      cfg,
		domain:   NewKeywordMatcher(cfg.DomainKeywords),
		location: NewKeywordMatcher(cfg.PreferredLocations),
		risk:     NewKeywordMatcher(cfg.RiskKeywords),
	}
}

// Score computes all sub-scores for a record as of the given evaluation
// date. Malformed fields degrade the affected sub-score to its floor
// instead of failing the call.
func (e *Engine) Score(record *tender.Record, now time.Time) SubScores {
	scores := SubScores{
		Sector:   e.sectorScore(record),
		Budget:   e.budgetScore(record),
		Location: e.locationScore(record),
		Deadline: e.deadlineScore(record, now),
		Risk:     e.riskScore(record),
	}
	scores.Total = scores.Sector + scores.Budget + scores.Location + scores.Deadline + scores.Risk
	return scores
}

func (e *Engine) sectorScore(record *tender.Record) int {
	if e.domain.Matches(record.ProjectType) {
		return maxSubScore
	}
	return 0
}

func (e *Engine) budgetScore(record *tender.Record) int {
	value, ok := record.BudgetValue()
	if !ok {
		return 0
	}

	switch {
	case value >= e.cfg.BudgetRange.Min && value <= e.cfg.BudgetRange.Max:
		return maxSubScore
	case value < e.cfg.BudgetRange.Min:
		// Smaller jobs are acceptable but less attractive.
		return 5
	default:
		// Above the comfortable band: attractive but riskier.
		return 7
	}
}

func (e *Engine) locationScore(record *tender.Record) int {
	if e.location.Matches(record.Location) {
		return maxSubScore
	}
	// Unknown locations are neutral, not penalized to zero.
	return 5
}

func (e *Engine) deadlineScore(record *tender.Record, now time.Time) int {
	deadline, ok := record.DeadlineDate()
	if !ok {
		return 0
	}

	daysLeft := int(deadline.Sub(now).Hours() / 24)
	switch {
	case daysLeft > e.cfg.MinDaysUntilDeadline:
		return maxSubScore
	case daysLeft >= 0:
		// Urgent but still feasible.
		return 3
	default:
		return 0
	}
}

func (e *Engine) riskScore(record *tender.Record) int {
	hits := e.risk.Hits(record.Title + " " + record.ProjectType)
	score := maxSubScore - hits*riskHitWeight
	if score < 0 {
		return 0
	}
	return score
}
