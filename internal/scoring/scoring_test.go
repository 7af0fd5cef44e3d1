package scoring

import (
	"testing"
	"time"

	"github.com/ermekov/tenderscope/internal/tender"
)

var evalDate = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func TestScorePerfectTender(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{})
	record := &tender.Record{
		Title:       "Rehabilitation of municipal roads",
		ProjectType: "road construction",
		Location:    "Bishkek",
		BudgetRaw:   "2,500,000 KGS",
		DeadlineRaw: "2025-09-21", // 20 days out
	}

	scores := engine.Score(record, evalDate)

	expected := SubScores{Sector: 10, Budget: 10, Location: 10, Deadline: 10, Risk: 10, Total: 50}
	if scores != expected {
		t.Fatalf("expected %+v, got %+v", expected, scores)
	}
}

func TestScoreMalformedFieldsDegradeToFloor(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{})
	record := &tender.Record{
		Title:       "Mystery works",
		ProjectType: "unclassified",
		Location:    "",
		BudgetRaw:   "TBD",
		DeadlineRaw: "ASAP",
	}

	scores := engine.Score(record, evalDate)

	if scores.Budget != 0 {
		t.Fatalf("expected budget floor 0, got %d", scores.Budget)
	}
	if scores.Deadline != 0 {
		t.Fatalf("expected deadline floor 0, got %d", scores.Deadline)
	}
	if scores.Location != 5 {
		t.Fatalf("expected neutral location score 5, got %d", scores.Location)
	}
	if scores.Sector != 0 {
		t.Fatalf("expected sector 0, got %d", scores.Sector)
	}
	if scores.Risk != 10 {
		t.Fatalf("expected untouched risk score 10, got %d", scores.Risk)
	}
}

func TestBudgetScoreBands(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{})

	tests := []struct {
		name   string
		budget string
		expect int
	}{
		{name: "inside range", budget: "5,000,000", expect: 10},
		{name: "below minimum", budget: "400,000", expect: 5},
		{name: "above maximum", budget: "25,000,000", expect: 7},
		{name: "unparseable", budget: "to be announced", expect: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record := &tender.Record{BudgetRaw: tt.budget}
			if got := engine.Score(record, evalDate).Budget; got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestDeadlineScoreBands(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{})

	tests := []struct {
		name     string
		deadline string
		expect   int
	}{
		{name: "far out", deadline: "2025-10-01", expect: 10},
		{name: "urgent but feasible", deadline: "2025-09-04", expect: 3},
		{name: "today", deadline: "2025-09-01", expect: 3},
		{name: "already past", deadline: "2025-08-20", expect: 0},
		{name: "unparseable", deadline: "soon", expect: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record := &tender.Record{DeadlineRaw: tt.deadline}
			if got := engine.Score(record, evalDate).Deadline; got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestRiskScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{})
	record := &tender.Record{
		Title:       "Urgent repair with penalty clauses, expect delay and lawsuit",
		ProjectType: "high complexity works with tight deadline",
	}

	scores := engine.Score(record, evalDate)
	if scores.Risk != 0 {
		t.Fatalf("expected risk floored at 0, got %d", scores.Risk)
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{})
	records := []*tender.Record{
		{},
		{Title: "penalty lawsuit urgent delay", ProjectType: "high complexity tight deadline"},
		{ProjectType: "road construction", BudgetRaw: "5,000,000", Location: "Osh", DeadlineRaw: "2025-12-01"},
	}

	for _, record := range records {
		scores := engine.Score(record, evalDate)
		for name, sub := range map[string]int{
			"sector":   scores.Sector,
			"budget":   scores.Budget,
			"location": scores.Location,
			"deadline": scores.Deadline,
			"risk":     scores.Risk,
		} {
			if sub < 0 || sub > 10 {
				t.Fatalf("%s score out of bounds: %d", name, sub)
			}
		}
		if scores.Total < 0 || scores.Total > 50 {
			t.Fatalf("total out of bounds: %d", scores.Total)
		}
	}
}

func TestCustomConfig(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{
		DomainKeywords:     []string{"bridge"},
		PreferredLocations: []string{"Almaty"},
	})

	record := &tender.Record{ProjectType: "Bridge rehabilitation", Location: "Almaty oblast"}
	scores := engine.Score(record, evalDate)

	if scores.Sector != 10 {
		t.Fatalf("expected sector 10 with custom keywords, got %d", scores.Sector)
	}
	if scores.Location != 10 {
		t.Fatalf("expected location 10 with custom preference, got %d", scores.Location)
	}
}

func TestBudgetRangePartialDefaults(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{BudgetRange: BudgetRange{Min: 2_000_000}})

	if got := engine.Score(&tender.Record{BudgetRaw: "5,000,000"}, evalDate).Budget; got != 10 {
		t.Fatalf("expected in-band score 10 with defaulted maximum, got %d", got)
	}
	if got := engine.Score(&tender.Record{BudgetRaw: "1,500,000"}, evalDate).Budget; got != 5 {
		t.Fatalf("expected below-minimum score 5, got %d", got)
	}
}

func TestBudgetRangeInvertedBandCollapses(t *testing.T) {
	t.Parallel()

	engine := NewEngine(Config{BudgetRange: BudgetRange{Min: 20_000_000, Max: 15_000_000}})

	if got := engine.Score(&tender.Record{BudgetRaw: "20,000,000"}, evalDate).Budget; got != 10 {
		t.Fatalf("expected the minimum itself to stay in band, got %d", got)
	}
	if got := engine.Score(&tender.Record{BudgetRaw: "25,000,000"}, evalDate).Budget; got != 7 {
		t.Fatalf("expected above-band score 7, got %d", got)
	}
}

func TestKeywordMatcherHits(t *testing.T) {
	t.Parallel()

	matcher := NewKeywordMatcher([]string{"penalty", "delay", ""})

	if hits := matcher.Hits("Penalty applies in case of DELAY"); hits != 2 {
		t.Fatalf("expected 2 hits, got %d", hits)
	}
	if matcher.Matches("clean text") {
		t.Fatal("expected no match")
	}
}
