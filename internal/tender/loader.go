package tender

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

// FromJSON decodes extractor output into records. The input may be a
// single object or an array of objects. Individual fields are read
// tolerantly: missing keys, non-string values and placeholder text all
// collapse to empty fields rather than failing the load.
func FromJSON(data []byte) (*Tenders, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("extractor output is not valid JSON")
	}

	parsed := gjson.ParseBytes(data)

	tenders := &Tenders{}
	if parsed.IsArray() {
		for _, item := range parsed.Array() {
			tenders.Items = append(tenders.Items, recordFromResult(item))
		}
		return tenders, nil
	}

	tenders.Items = append(tenders.Items, recordFromResult(parsed))
	return tenders, nil
}

// LoadFromFile reads a file produced by the upstream extractor.
func LoadFromFile(path string) (*Tenders, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tenders file: %w", err)
	}

	tenders, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decoding tenders file %q: %w", path, err)
	}
	return tenders, nil
}

// FromMap decodes a generic key/value map into a record. Unknown keys
// are ignored; values with the wrong type fail the decode as a whole.
func FromMap(fields map[string]any) (*Record, error) {
	var record Record

	cfg := &mapstructure.DecoderConfig{
		Result:           &record,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, fmt.Errorf("decoding tender fields: %w", err)
	}

	normalizeRecord(&record)
	return &record, nil
}

func recordFromResult(item gjson.Result) *Record {
	record := &Record{
		ID:                   item.Get("tender_id").String(),
		Title:                item.Get("title").String(),
		Issuer:               item.Get("issuer").String(),
		Location:             item.Get("location").String(),
		ProjectType:          item.Get("project_type").String(),
		BudgetRaw:            item.Get("budget").String(),
		DeadlineRaw:          item.Get("deadline").String(),
		TechnicalSpecs:       item.Get("technical_specs").String(),
		PaymentTerms:         item.Get("payment_terms").String(),
		ResourceRequirements: item.Get("resource_requirements").String(),
		AVK5Required:         item.Get("avk5_required").Bool(),
	}

	for _, doc := range item.Get("required_documents").Array() {
		if name := NormalizeField(doc.String()); name != "" {
			record.RequiredDocuments = append(record.RequiredDocuments, name)
		}
	}

	normalizeRecord(record)
	return record
}

func normalizeRecord(record *Record) {
	record.ID = NormalizeField(record.ID)
	record.Title = NormalizeField(record.Title)
	record.Issuer = NormalizeField(record.Issuer)
	record.Location = NormalizeField(record.Location)
	record.ProjectType = NormalizeField(record.ProjectType)
	record.BudgetRaw = NormalizeField(record.BudgetRaw)
	record.DeadlineRaw = NormalizeField(record.DeadlineRaw)
}
