package company

// ComplianceReport is the result of matching a tender's required
// documents against the vault.
type ComplianceReport struct {
	AvailableDocuments []string
	MissingDocuments   []string
	ComplianceScore    float64
	IsCompliant        bool
}

// CheckCompliance compares required document names against a vault
// snapshot using exact name matches. An empty requirement list is
// trivially compliant.
func CheckCompliance(required []string, vault Snapshot) ComplianceReport {
	if len(required) == 0 {
		return ComplianceReport{ComplianceScore: 1.0, IsCompliant: true}
	}

	report := ComplianceReport{}
	for _, name := range required {
		if vault.Has(name) {
			report.AvailableDocuments = append(report.AvailableDocuments, name)
		} else {
			report.MissingDocuments = append(report.MissingDocuments, name)
		}
	}

	report.ComplianceScore = float64(len(report.AvailableDocuments)) / float64(len(required))
	report.IsCompliant = report.ComplianceScore == 1.0
	return report
}
