package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrMaterialNotFound is returned when a (category, specification) pair
// has no entry in the catalog.
var ErrMaterialNotFound = errors.New("material not found in catalog")

// Entry holds the unit of measure and the default unit price for one
// material specification.
type Entry struct {
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// Catalog is read-only AVK5 reference data: categories mapping to
// material specifications with their default pricing.
type Catalog struct {
	categories map[string]map[string]Entry
}

func New(categories map[string]map[string]Entry) *Catalog {
	if categories == nil {
		categories = make(map[string]map[string]Entry)
	}
	return &Catalog{categories: categories}
}

// LoadFromFile reads an AVK5 standards JSON file
// (category -> specification -> {unit, price}).
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var categories map[string]map[string]Entry
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decoding catalog file %q: %w", path, err)
	}

	return New(categories), nil
}

// Lookup returns the catalog entry for a material.
func (c *Catalog) Lookup(category, specification string) (Entry, error) {
	specs, ok := c.categories[category]
	if !ok {
		return Entry{}, fmt.Errorf("%w: category %q", ErrMaterialNotFound, category)
	}

	entry, ok := specs[specification]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q in category %q", ErrMaterialNotFound, specification, category)
	}

	return entry, nil
}

// Categories returns the catalog's category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specifications returns the specification names of one category in
// sorted order, empty when the category is unknown.
func (c *Catalog) Specifications(category string) []string {
	specs := c.categories[category]
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
