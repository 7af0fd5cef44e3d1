package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ermekov/tenderscope/internal/company"
	"github.com/ermekov/tenderscope/internal/evaluation"
)

// Header lists the columns of one exported evaluation row, in order.
var Header = []string{
	"tender_id",
	"title",
	"sector_score",
	"budget_score",
	"location_score",
	"deadline_score",
	"risk_score",
	"total_score",
	"compliance_score",
	"is_compliant",
	"tender_value",
	"estimated_cost",
	"gross_profit",
	"profit_margin",
	"roi_score",
	"timeline_feasibility",
	"recommendation",
	"risk_factors",
}

// Row flattens one evaluation result into a key/value record suitable
// for tabular export.
func Row(result *evaluation.Result) []string {
	return []string{
		result.TenderID,
		result.Title,
		strconv.Itoa(result.Scores.Sector),
		strconv.Itoa(result.Scores.Budget),
		strconv.Itoa(result.Scores.Location),
		strconv.Itoa(result.Scores.Deadline),
		strconv.Itoa(result.Scores.Risk),
		strconv.Itoa(result.Scores.Total),
		strconv.FormatFloat(result.Compliance.ComplianceScore, 'f', 2, 64),
		strconv.FormatBool(result.Compliance.IsCompliant),
		strconv.FormatFloat(result.Analysis.TenderValue, 'f', 2, 64),
		strconv.FormatFloat(result.Analysis.EstimatedCost, 'f', 2, 64),
		strconv.FormatFloat(result.Analysis.GrossProfit, 'f', 2, 64),
		strconv.FormatFloat(result.Analysis.ProfitMargin, 'f', 4, 64),
		strconv.FormatFloat(result.Analysis.ROIScore, 'f', 1, 64),
		string(result.Analysis.TimelineFeasibility),
		string(result.Analysis.Recommendation),
		strings.Join(result.Analysis.RiskFactors, "; "),
	}
}

// WriteCSV writes one row per evaluation, preceded by the header.
func WriteCSV(w io.Writer, results []*evaluation.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, result := range results {
		if result == nil {
			continue
		}
		if err := writer.Write(Row(result)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// DumpToTmpFile writes the full results as indented JSON to a temp file
// and returns its name.
func DumpToTmpFile(results []*evaluation.Result) (string, error) {
	file, err := os.CreateTemp("", "evaluations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// printer renders thousand-separated figures for the console report.
var printer = message.NewPrinter(language.English)

// RenderReport writes a human-readable summary of one evaluation.
func RenderReport(w io.Writer, result *evaluation.Result) {
	fmt.Fprintf(w, "%s (%s)\n", result.Title, result.TenderID)
	fmt.Fprintf(w, "  scores: sector=%d budget=%d location=%d deadline=%d risk=%d total=%d/50\n",
		result.Scores.Sector, result.Scores.Budget, result.Scores.Location,
		result.Scores.Deadline, result.Scores.Risk, result.Scores.Total,
	)
	fmt.Fprintf(w, "  compliance: %.0f%%", result.Compliance.ComplianceScore*100)
	if len(result.Compliance.MissingDocuments) > 0 {
		fmt.Fprintf(w, " (missing: %s)", strings.Join(result.Compliance.MissingDocuments, ", "))
	}
	fmt.Fprintln(w)

	printer.Fprintf(w, "  tender value: %.2f\n", result.Analysis.TenderValue)
	printer.Fprintf(w, "  estimated cost: %.2f\n", result.Analysis.EstimatedCost)
	printer.Fprintf(w, "  gross profit: %.2f\n", result.Analysis.GrossProfit)
	fmt.Fprintf(w, "  profit margin: %.1f%%\n", result.Analysis.ProfitMargin*100)
	fmt.Fprintf(w, "  roi score: %.1f/100\n", result.Analysis.ROIScore)

	for _, resource := range company.ResourceTypes {
		gap := result.Analysis.ResourceGaps[resource]
		if gap.Required == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s: %d/%d (%d gap)\n", resource, gap.Available, gap.Required, gap.Gap)
	}

	fmt.Fprintf(w, "  timeline: %s\n", result.Analysis.TimelineFeasibility)
	for _, factor := range result.Analysis.RiskFactors {
		fmt.Fprintf(w, "  risk: %s\n", factor)
	}
	fmt.Fprintf(w, "  recommendation: %s\n", result.Analysis.Recommendation)
}
