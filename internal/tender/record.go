package tender

import (
	"time"
)

const (
	RecordIDField     = "ID"
	RecordIssuerField = "Issuer"
)

// Placeholder values the upstream extractor emits instead of leaving a
// field empty.
var placeholders = map[string]struct{}{
	"not specified": {},
	"not found":     {},
	"unknown":       {},
	"n/a":           {},
	"tbd":           {},
	"-":             {},
}

// Record is the normalized view of one tender as produced by the upstream
// extractor. It is treated as immutable once handed to the engine.
type Record struct {
	ID          string `json:"tender_id,omitempty" mapstructure:"tender_id"`
	Title       string `json:"title,omitempty" mapstructure:"title"`
	Issuer      string `json:"issuer,omitempty" mapstructure:"issuer"`
	Location    string `json:"location,omitempty" mapstructure:"location"`
	ProjectType string `json:"project_type,omitempty" mapstructure:"project_type"`

	BudgetRaw   string `json:"budget,omitempty" mapstructure:"budget"`
	DeadlineRaw string `json:"deadline,omitempty" mapstructure:"deadline"`

	RequiredDocuments []string `json:"required_documents,omitempty" mapstructure:"required_documents"`

	TechnicalSpecs       string `json:"technical_specs,omitempty" mapstructure:"technical_specs"`
	PaymentTerms         string `json:"payment_terms,omitempty" mapstructure:"payment_terms"`
	ResourceRequirements string `json:"resource_requirements,omitempty" mapstructure:"resource_requirements"`

	AVK5Required bool `json:"avk5_required,omitempty" mapstructure:"avk5_required"`
}

// BudgetValue returns the parsed numeric budget, or false when the raw
// string holds no parseable amount.
func (r *Record) BudgetValue() (float64, bool) {
	return ParseBudget(r.BudgetRaw)
}

// DeadlineDate returns the parsed deadline, or false when the raw string
// matches no supported format.
func (r *Record) DeadlineDate() (time.Time, bool) {
	return ParseDeadline(r.DeadlineRaw)
}

func (r *Record) GetStringField(name string) string {
	switch name {
	case RecordIDField:
		return r.ID
	case RecordIssuerField:
		return r.Issuer
	default:
		return ""
	}
}
