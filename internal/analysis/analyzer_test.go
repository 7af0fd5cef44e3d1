package analysis

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ermekov/tenderscope/internal/company"
)

func TestAnalyze(t *testing.T) {
	profile := &company.Profile{Workers: 5, Engineers: 2, Vehicles: 3}

	Convey("Given a tender with healthy financials", t, func() {
		input := Input{
			Budget:          5_000_000,
			EstimatedCost:   2_500_000,
			Timeline:        Timeline{DurationDays: 120},
			Complexity:      3,
			Competitors:     2,
			ComplianceScore: 1.0,
		}

		Convey("When it is analyzed", func() {
			result := Analyze(input, profile)

			Convey("The financials are computed from value and cost", func() {
				So(result.TenderValue, ShouldEqual, 5_000_000)
				So(result.GrossProfit, ShouldEqual, 2_500_000)
				So(result.ProfitMargin, ShouldEqual, 0.5)
			})

			Convey("The ROI score is high and bounded", func() {
				So(result.ROIScore, ShouldBeGreaterThanOrEqualTo, 70)
				So(result.ROIScore, ShouldBeLessThanOrEqualTo, 100)
			})

			Convey("The timeline is adequate and the tender is pursued", func() {
				So(result.TimelineFeasibility, ShouldEqual, FeasibilityAdequate)
				So(result.Recommendation, ShouldEqual, RecommendationPursue)
			})
		})
	})

	Convey("Given a tender with an unknown budget", t, func() {
		input := Input{
			Budget:          0,
			EstimatedCost:   100_000,
			Timeline:        Timeline{DurationDays: 90},
			Competitors:     3,
			ComplianceScore: 1.0,
		}

		Convey("When it is analyzed", func() {
			result := Analyze(input, profile)

			Convey("The margin stays zero instead of dividing by zero", func() {
				So(result.ProfitMargin, ShouldEqual, 0)
			})

			Convey("The recommendation is avoid", func() {
				So(result.Recommendation, ShouldEqual, RecommendationAvoid)
			})
		})
	})

	Convey("Given a tender requiring more workers than available", t, func() {
		input := Input{
			Budget:               3_000_000,
			ResourceRequirements: "Mobilize 10 workers and 2 engineers on site",
			Timeline:             Timeline{DurationDays: 90},
			Complexity:           4,
			ComplianceScore:      1.0,
		}

		Convey("When it is analyzed", func() {
			result := Analyze(input, profile)
			gap := result.ResourceGaps[company.ResourceWorkers]

			Convey("The worker gap is half of the requirement", func() {
				So(gap.Required, ShouldEqual, 10)
				So(gap.Available, ShouldEqual, 5)
				So(gap.Gap, ShouldEqual, 5)
				So(gap.GapPercent, ShouldEqual, 0.5)
			})

			Convey("Engineers are fully covered", func() {
				So(result.ResourceGaps[company.ResourceEngineers].Gap, ShouldEqual, 0)
				So(result.ResourceGaps[company.ResourceEngineers].GapPercent, ShouldEqual, 0)
			})

			Convey("The shortfall is surfaced as a risk factor", func() {
				So(result.RiskFactors, ShouldContain, "resource shortfall: 5 more workers needed")
			})
		})
	})

	Convey("Given a tender with no resource requirements", t, func() {
		result := Analyze(Input{Budget: 1, Timeline: Timeline{DurationDays: 90}, ComplianceScore: 1}, profile)

		Convey("All gap percentages are zero, not division errors", func() {
			for _, resource := range company.ResourceTypes {
				So(result.ResourceGaps[resource].Required, ShouldEqual, 0)
				So(result.ResourceGaps[resource].GapPercent, ShouldEqual, 0)
			}
		})
	})

	Convey("Given penalty clauses, heavy competition and partial compliance", t, func() {
		input := Input{
			Budget:          2_000_000,
			EstimatedCost:   1_800_000,
			Timeline:        Timeline{DurationDays: 30},
			Complexity:      8,
			HasPenalties:    true,
			Competitors:     7,
			RequiredDocs:    []string{"License", "Insurance"},
			ComplianceScore: 0.5,
		}

		Convey("When it is analyzed", func() {
			result := Analyze(input, profile)

			Convey("Every triggered condition shows up as a risk factor", func() {
				So(result.RiskFactors, ShouldContain, "contract includes penalty clauses")
				So(result.RiskFactors, ShouldContain, "high competition: 7 expected bidders")
				So(result.RiskFactors, ShouldContain, "document compliance incomplete: 50%")
				So(result.TimelineFeasibility, ShouldEqual, FeasibilityInadequate)
				So(result.Recommendation, ShouldEqual, RecommendationAvoid)
			})
		})
	})
}

func TestROIScoreMonotonicity(t *testing.T) {
	Convey("ROI score behaves monotonically in each input", t, func() {
		Convey("Higher margin never lowers the score", func() {
			So(roiScore(0.4, 4, 3), ShouldBeGreaterThanOrEqualTo, roiScore(0.2, 4, 3))
		})

		Convey("More competitors never raise the score", func() {
			So(roiScore(0.3, 4, 8), ShouldBeLessThanOrEqualTo, roiScore(0.3, 4, 2))
		})

		Convey("Higher complexity never raises the score", func() {
			So(roiScore(0.3, 9, 3), ShouldBeLessThanOrEqualTo, roiScore(0.3, 2, 3))
		})

		Convey("The score stays within its bounds at extremes", func() {
			So(roiScore(-5, 10, 50), ShouldEqual, 0)
			So(roiScore(5, 1, 0), ShouldEqual, 100)
		})
	})
}

func TestTimelineFeasibility(t *testing.T) {
	Convey("Timeline feasibility scales with complexity", t, func() {
		Convey("A long duration is adequate", func() {
			So(timelineFeasibility(90, 4), ShouldEqual, FeasibilityAdequate)
		})

		Convey("A tight duration is risky", func() {
			So(timelineFeasibility(45, 4), ShouldEqual, FeasibilityRisky)
		})

		Convey("A too-short duration is inadequate", func() {
			So(timelineFeasibility(30, 4), ShouldEqual, FeasibilityInadequate)
		})

		Convey("More complex work needs more time for the same verdict", func() {
			So(timelineFeasibility(90, 8), ShouldEqual, FeasibilityRisky)
			So(timelineFeasibility(90, 3), ShouldEqual, FeasibilityAdequate)
		})
	})
}

func TestExtractResources(t *testing.T) {
	Convey("Resource extraction scans requirement text", t, func() {
		Convey("Counts are picked up for each resource kind", func() {
			resources := ExtractResources("Requires 12 workers, 3 engineers and 4 trucks")
			So(resources[company.ResourceWorkers], ShouldEqual, 12)
			So(resources[company.ResourceEngineers], ShouldEqual, 3)
			So(resources[company.ResourceVehicles], ShouldEqual, 4)
		})

		Convey("Synonyms are recognized", func() {
			resources := ExtractResources("10 laborers and 2 vehicles on site")
			So(resources[company.ResourceWorkers], ShouldEqual, 10)
			So(resources[company.ResourceVehicles], ShouldEqual, 2)
		})

		Convey("Unmatched resources default to zero", func() {
			resources := ExtractResources("no staffing details provided")
			So(resources[company.ResourceWorkers], ShouldEqual, 0)
			So(resources[company.ResourceEngineers], ShouldEqual, 0)
			So(resources[company.ResourceVehicles], ShouldEqual, 0)
		})
	})
}

func TestEstimateComplexity(t *testing.T) {
	Convey("Complexity estimation buckets technical specs by keywords", t, func() {
		So(EstimateComplexity("full building automation with BIM models"), ShouldEqual, 8)
		So(EstimateComplexity("roof replacement and paving"), ShouldEqual, 5)
		So(EstimateComplexity("interior painting and doors"), ShouldEqual, 3)
		So(EstimateComplexity("general works"), ShouldEqual, 4)
	})
}
