package evaluation

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ermekov/tenderscope/internal/analysis"
	"github.com/ermekov/tenderscope/internal/catalog"
	"github.com/ermekov/tenderscope/internal/company"
	"github.com/ermekov/tenderscope/internal/logger"
	"github.com/ermekov/tenderscope/internal/scoring"
	"github.com/ermekov/tenderscope/internal/tender"
)

const (
	// Default execution window assumed when a tender does not state one.
	defaultDurationDays = 90
	// Default number of expected bidders on a public tender.
	defaultCompetitors = 3

	defaultWorkers = 4
)

// Result is the complete evaluation of one tender. It is created fresh
// per call and never mutated afterwards.
type Result struct {
	ID          string                   `json:"evaluation_id"`
	TenderID    string                   `json:"tender_id,omitempty"`
	Title       string                   `json:"title,omitempty"`
	Scores      scoring.SubScores        `json:"scores"`
	Compliance  company.ComplianceReport `json:"compliance"`
	Cost        catalog.CostEstimate     `json:"cost"`
	Analysis    analysis.Analysis        `json:"analysis"`
	EvaluatedAt time.Time                `json:"evaluated_at"`
}

// Options tune an Evaluator. The zero value is usable.
type Options struct {
	Scoring      scoring.Config
	DurationDays int
	Competitors  int
	HasPenalties bool
	Logger       *zap.Logger
	// Now is injectable for deterministic tests.
	Now func() time.Time
}

// Evaluator composes the scoring engine, compliance checker, cost
// estimator and profitability analyzer. It holds only read-only state
// and is safe for concurrent use across a batch.
type Evaluator struct {
	engine  *scoring.Engine
	vault   company.Snapshot
	profile *company.Profile
	opts    Options
}

func New(profile *company.Profile, vault company.Snapshot, opts Options) *Evaluator {
	if opts.DurationDays <= 0 {
		opts.DurationDays = defaultDurationDays
	}
	if opts.Competitors <= 0 {
		opts.Competitors = defaultCompetitors
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Evaluator{
		engine:  scoring.NewEngine(opts.Scoring),
		vault:   vault,
		profile: profile,
		opts:    opts,
	}
}

// Evaluate runs the full pipeline for one tender record with the given
// material line items. It never fails: malformed fields degrade the
// affected scores instead.
func (e *Evaluator) Evaluate(record *tender.Record, items []catalog.LineItem) *Result {
	now := e.opts.Now()

	scores := e.engine.Score(record, now)
	compliance := company.CheckCompliance(record.RequiredDocuments, e.vault)
	cost := catalog.Estimate(items)

	budget, _ := record.BudgetValue()
	verdict := analysis.Analyze(analysis.Input{
		Budget:               budget,
		EstimatedCost:        cost.Total,
		ResourceRequirements: record.ResourceRequirements,
		TechnicalSpecs:       record.TechnicalSpecs,
		Timeline:             analysis.Timeline{DurationDays: e.opts.DurationDays},
		PaymentTerms:         record.PaymentTerms,
		HasPenalties:         e.opts.HasPenalties,
		Competitors:          e.opts.Competitors,
		RequiredDocs:         record.RequiredDocuments,
		ComplianceScore:      compliance.ComplianceScore,
	}, e.profile)

	// The record's own ID identifies the evaluation; records without one
	// get a generated ID so every result stays addressable.
	evaluationID := record.ID
	if evaluationID == "" {
		evaluationID = uuid.NewString()
	}

	result := &Result{
		ID:          evaluationID,
		TenderID:    record.ID,
		Title:       record.Title,
		Scores:      scores,
		Compliance:  compliance,
		Cost:        cost,
		Analysis:    verdict,
		EvaluatedAt: now,
	}

	e.opts.Logger.Debug("tender evaluated", logger.ResultFields(
		result.TenderID,
		result.Scores.Total,
		result.Analysis.ROIScore,
		string(result.Analysis.Recommendation),
	)...)

	return result
}

// EvaluateBatch evaluates records concurrently with a fixed-size worker
// pool, applying the same material line items to every record.
// Evaluations share no mutable state, so no ordering between them is
// needed; results are written back by index to keep input order.
func (e *Evaluator) EvaluateBatch(tenders *tender.Tenders, items []catalog.LineItem, workers int) []*Result {
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]*Result, tenders.Len())
	indexes := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = e.Evaluate(tenders.Items[idx], items)
			}
		}()
	}

	for idx := range tenders.Items {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return results
}

// RecommendationIndex maps tender IDs to recommendation tiers for
// grouping in reports.
func RecommendationIndex(results []*Result) map[string]string {
	index := make(map[string]string, len(results))
	for _, result := range results {
		if result == nil || result.TenderID == "" {
			continue
		}
		index[result.TenderID] = string(result.Analysis.Recommendation)
	}
	return index
}
