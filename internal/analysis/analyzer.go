package analysis

import (
	"fmt"

	"github.com/ermekov/tenderscope/internal/company"
)

// Feasibility classifies whether the tender's duration leaves enough
// room for work of its complexity.
type Feasibility string

const (
	FeasibilityAdequate   Feasibility = "adequate"
	FeasibilityRisky      Feasibility = "risky"
	FeasibilityInadequate Feasibility = "inadequate"
)

// Recommendation is the final go/no-go tier.
type Recommendation string

const (
	RecommendationPursue  Recommendation = "pursue"
	RecommendationCaution Recommendation = "caution"
	RecommendationAvoid   Recommendation = "avoid"
)

// Policy thresholds. Tunable, but the three-way classifications and
// their monotonic behaviour are part of the contract.
const (
	competitorRiskThreshold = 5
	baseDaysPerComplexity   = 10

	roiBase             = 50.0
	roiMarginWeight     = 80.0
	roiComplexityWeight = 3.0
	roiCompetitorWeight = 2.0

	roiPursueThreshold = 70.0
	roiAvoidThreshold  = 40.0

	complianceAvoidThreshold = 0.5
)

// Timeline describes the tender's execution window.
type Timeline struct {
	DurationDays int
	StartDate    string
}

// Input carries everything the analyzer needs for one tender. Budget is
// the already-normalized tender value; zero means "unknown budget".
type Input struct {
	Budget               float64
	EstimatedCost        float64
	ResourceRequirements string
	TechnicalSpecs       string
	Timeline             Timeline
	// Complexity is the 1-10 severity; leave 0 to estimate it from
	// the technical specs.
	Complexity      int
	PaymentTerms    string
	HasPenalties    bool
	Competitors     int
	RequiredDocs    []string
	ComplianceScore float64
}

// ResourceGap is the shortfall for one resource type.
type ResourceGap struct {
	Required   int     `json:"required"`
	Available  int     `json:"available"`
	Gap        int     `json:"gap"`
	GapPercent float64 `json:"gap_percent"`
}

// Analysis is the profitability and resource-gap verdict for one tender.
type Analysis struct {
	TenderValue         float64                `json:"tender_value"`
	EstimatedCost       float64                `json:"estimated_cost"`
	GrossProfit         float64                `json:"gross_profit"`
	ProfitMargin        float64                `json:"profit_margin"`
	ROIScore            float64                `json:"roi_score"`
	Complexity          int                    `json:"complexity"`
	ResourceGaps        map[string]ResourceGap `json:"resource_gap"`
	RiskFactors         []string               `json:"risk_factors"`
	TimelineFeasibility Feasibility            `json:"timeline_feasibility"`
	Recommendation      Recommendation         `json:"recommendation"`
}

// Analyze produces the complete verdict. It never fails: missing and
// zero inputs degrade to conservative values instead of errors.
func Analyze(input Input, profile *company.Profile) Analysis {
	complexity := input.Complexity
	if complexity == 0 {
		complexity = EstimateComplexity(input.TechnicalSpecs)
	}
	complexity = clampComplexity(complexity)

	result := Analysis{
		TenderValue:   input.Budget,
		EstimatedCost: input.EstimatedCost,
		Complexity:    complexity,
	}
	if result.TenderValue < 0 {
		result.TenderValue = 0
	}
	if result.EstimatedCost < 0 {
		result.EstimatedCost = 0
	}

	result.GrossProfit = result.TenderValue - result.EstimatedCost
	if result.TenderValue > 0 {
		result.ProfitMargin = result.GrossProfit / result.TenderValue
	}

	result.ROIScore = roiScore(result.ProfitMargin, complexity, input.Competitors)
	result.ResourceGaps = resourceGaps(ExtractResources(input.ResourceRequirements), profile)
	result.TimelineFeasibility = timelineFeasibility(input.Timeline.DurationDays, complexity)
	result.RiskFactors = riskFactors(input, result)
	result.Recommendation = recommend(result.ROIScore, input.ComplianceScore, result.TimelineFeasibility)

	return result
}

// roiScore is a bounded 0-100 indicator: monotonically increasing in
// margin, decreasing in complexity and competition.
func roiScore(margin float64, complexity, competitors int) float64 {
	if competitors < 0 {
		competitors = 0
	}

	score := roiBase +
		margin*roiMarginWeight -
		float64(complexity)*roiComplexityWeight -
		float64(competitors)*roiCompetitorWeight

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func resourceGaps(required map[string]int, profile *company.Profile) map[string]ResourceGap {
	gaps := make(map[string]ResourceGap, len(company.ResourceTypes))
	for _, resource := range company.ResourceTypes {
		need := required[resource]
		have := profile.Available(resource)

		gap := need - have
		if gap < 0 {
			gap = 0
		}

		percent := 0.0
		if need > 0 {
			percent = float64(gap) / float64(need)
			if percent > 1 {
				percent = 1
			}
		}

		gaps[resource] = ResourceGap{
			Required:   need,
			Available:  have,
			Gap:        gap,
			GapPercent: percent,
		}
	}
	return gaps
}

func timelineFeasibility(durationDays, complexity int) Feasibility {
	required := complexity * baseDaysPerComplexity
	switch {
	case durationDays >= required*3/2:
		return FeasibilityAdequate
	case durationDays >= required:
		return FeasibilityRisky
	default:
		return FeasibilityInadequate
	}
}

func riskFactors(input Input, result Analysis) []string {
	factors := make([]string, 0)

	if input.HasPenalties {
		factors = append(factors, "contract includes penalty clauses")
	}
	if input.Competitors >= competitorRiskThreshold {
		factors = append(factors, fmt.Sprintf("high competition: %d expected bidders", input.Competitors))
	}
	for _, resource := range company.ResourceTypes {
		if gap := result.ResourceGaps[resource]; gap.Gap > 0 {
			factors = append(factors, fmt.Sprintf("resource shortfall: %d more %s needed", gap.Gap, resource))
		}
	}
	if result.TimelineFeasibility != FeasibilityAdequate {
		factors = append(factors, fmt.Sprintf("timeline is %s for the estimated complexity", result.TimelineFeasibility))
	}
	if len(input.RequiredDocs) > 0 && input.ComplianceScore < 1.0 {
		factors = append(factors, fmt.Sprintf("document compliance incomplete: %.0f%%", input.ComplianceScore*100))
	}
	if result.ProfitMargin < 0 {
		factors = append(factors, "estimated cost exceeds tender value")
	}

	return factors
}

// recommend is a pure function of the three headline signals.
func recommend(roi, compliance float64, timeline Feasibility) Recommendation {
	if roi < roiAvoidThreshold || compliance < complianceAvoidThreshold || timeline == FeasibilityInadequate {
		return RecommendationAvoid
	}
	if roi >= roiPursueThreshold && compliance == 1.0 && timeline == FeasibilityAdequate {
		return RecommendationPursue
	}
	return RecommendationCaution
}
