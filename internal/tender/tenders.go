package tender

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tenders is a mutable working list of records flowing through screening
// and evaluation.
type Tenders struct {
	Items []*Record
}

func (t *Tenders) Len() int {
	return len(t.Items)
}

func (t *Tenders) FindByID(id string) *Record {
	for _, record := range t.Items {
		if record.ID == id {
			return record
		}
	}
	return nil
}

// Exclude removes every record whose field value matches any of the
// targets and returns the IDs of the removed records. Targets may match
// many records, such as several tenders from one issuer.
func (t *Tenders) Exclude(name string, targets []string) []string {
	wanted := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		if target == "" {
			continue
		}
		wanted[target] = struct{}{}
	}

	var excluded []string
	kept := make([]*Record, 0, len(t.Items))
	for _, record := range t.Items {
		if _, ok := wanted[record.GetStringField(name)]; ok {
			excluded = append(excluded, record.ID)
			continue
		}
		kept = append(kept, record)
	}
	t.Items = kept
	return excluded
}

// RemoveByIndex removes a record from the list by index. Does not preserve order.
func (t *Tenders) RemoveByIndex(idx int) {
	t.Items[idx] = t.Items[len(t.Items)-1]
	t.Items = t.Items[:len(t.Items)-1]
}

func (t *Tenders) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "tenders_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByIssuer groups brief tender summaries by issuer for display.
func (t *Tenders) ReportByIssuer() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, record := range t.Items {
		key := record.Issuer
		if key == "" {
			key = "unknown issuer"
		}
		entry := map[string]string{
			"title":        record.Title,
			"location":     record.Location,
			"project_type": record.ProjectType,
			"budget":       record.BudgetRaw,
			"deadline":     record.DeadlineRaw,
		}
		if record.AVK5Required {
			entry["avk5_required"] = "true"
		}
		report[key] = append(report[key], entry)
	}
	return report
}

// ReportByRecommendation buckets tender IDs by the recommendation tier
// assigned to them. Tenders without an entry in the index are skipped.
func (t *Tenders) ReportByRecommendation(index map[string]string) map[string][]string {
	report := make(map[string][]string)
	for _, record := range t.Items {
		tier, ok := index[record.ID]
		if !ok {
			continue
		}
		report[tier] = append(report[tier], fmt.Sprintf("%s %s", record.ID, record.Title))
	}
	return report
}
