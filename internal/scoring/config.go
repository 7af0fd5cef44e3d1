package scoring

// BudgetRange is the band of tender budgets the company considers a
// comfortable fit.
type BudgetRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// Config holds the scoring engine's tunables. Zero-valued fields are
// replaced with defaults by ApplyDefaults.
type Config struct {
	PreferredLocations   []string    `mapstructure:"preferred-locations"`
	DomainKeywords       []string    `mapstructure:"domain-keywords"`
	BudgetRange          BudgetRange `mapstructure:"budget-range"`
	MinDaysUntilDeadline int         `mapstructure:"min-days-until-deadline"`
	RiskKeywords         []string    `mapstructure:"risk-keywords"`
}

// Defaults mirror the company's original scoring matrix.
var (
	defaultPreferredLocations = []string{"Bishkek", "Osh", "Chuy"}
	defaultDomainKeywords     = []string{"road", "construction", "repair", "renovation", "design", "school"}
	defaultRiskKeywords       = []string{"penalty", "lawsuit", "urgent", "tight deadline", "delay", "high complexity"}
)

const (
	defaultMinBudget            = 1_000_000
	defaultMaxBudget            = 10_000_000
	defaultMinDaysUntilDeadline = 5
)

// ApplyDefaults fills unset options with their defaults and returns the
// resulting config.
func (c Config) ApplyDefaults() Config {
	if len(c.PreferredLocations) == 0 {
		c.PreferredLocations = defaultPreferredLocations
	}
	if len(c.DomainKeywords) == 0 {
		c.DomainKeywords = defaultDomainKeywords
	}
	if len(c.RiskKeywords) == 0 {
		c.RiskKeywords = defaultRiskKeywords
	}
	if c.BudgetRange.Min == 0 {
		c.BudgetRange.Min = defaultMinBudget
	}
	if c.BudgetRange.Max == 0 {
		c.BudgetRange.Max = defaultMaxBudget
	}
	// A band closing below its minimum collapses to a single point.
	if c.BudgetRange.Max < c.BudgetRange.Min {
		c.BudgetRange.Max = c.BudgetRange.Min
	}
	if c.MinDaysUntilDeadline == 0 {
		c.MinDaysUntilDeadline = defaultMinDaysUntilDeadline
	}
	return c
}
