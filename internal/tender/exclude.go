package tender

import (
	"encoding/json"
	"os"
	"time"
)

// ExcludedTenders is the persisted list of tenders rejected in earlier
// runs, kept in an exclude file so they are not evaluated again.
type ExcludedTenders struct {
	Items []*ExcludedTender
}

type ExcludedTender struct {
	ID         string
	Issuer     string
	ExcludedAt time.Time
}

func (t *Tenders) ToExcluded() *ExcludedTenders {
	excluded := &ExcludedTenders{}
	for _, record := range t.Items {
		excluded.Items = append(excluded.Items, &ExcludedTender{
			ID:         record.ID,
			Issuer:     record.Issuer,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

func GetExcludedTendersFromFile(path string) (*ExcludedTenders, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedTenders{}, nil
	}

	var excluded ExcludedTenders
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedTenders) Append(s *ExcludedTenders) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedTenders) IDs() []string {
	ids := make([]string, 0)
	for _, record := range e.Items {
		ids = append(ids, record.ID)
	}
	return ids
}

func (e *ExcludedTenders) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
