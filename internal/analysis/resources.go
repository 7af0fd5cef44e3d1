package analysis

import (
	"regexp"
	"strconv"

	"github.com/ermekov/tenderscope/internal/company"
)

// resourcePatterns map resource types to the phrasings tenders use for
// them. The first match per resource wins; unmatched resources stay 0.
var resourcePatterns = map[string]*regexp.Regexp{
	company.ResourceWorkers:   regexp.MustCompile(`(?i)(\d+)\s*(workers|laborers|people)`),
	company.ResourceEngineers: regexp.MustCompile(`(?i)(\d+)\s*(engineers)`),
	company.ResourceVehicles:  regexp.MustCompile(`(?i)(\d+)\s*(vehicles|trucks|cars)`),
}

// ExtractResources scans free-form requirement text for resource counts.
func ExtractResources(text string) map[string]int {
	resources := map[string]int{
		company.ResourceWorkers:   0,
		company.ResourceEngineers: 0,
		company.ResourceVehicles:  0,
	}

	for resource, pattern := range resourcePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		count, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		resources[resource] = count
	}

	return resources
}
