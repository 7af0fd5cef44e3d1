package catalog

import (
	"errors"
	"fmt"
)

var ErrNegativeQuantity = errors.New("quantity must not be negative")

// LineItem is one user-specified material position. The unit price
// defaults to the catalog's entry but may be overridden by the caller.
type LineItem struct {
	Category      string  `json:"category" mapstructure:"category"`
	Specification string  `json:"specification" mapstructure:"specification"`
	Unit          string  `json:"unit" mapstructure:"unit"`
	Quantity      float64 `json:"quantity" mapstructure:"quantity"`
	UnitPrice     float64 `json:"unit_price" mapstructure:"unit-price"`
}

func (i LineItem) Total() float64 {
	return i.Quantity * i.UnitPrice
}

// NewLineItem builds a line item against the catalog. A missing material
// fails loudly here, at construction time; aggregation never fails.
// Pass a negative priceOverride to keep the catalog's default price.
func NewLineItem(cat *Catalog, category, specification string, quantity, priceOverride float64) (LineItem, error) {
	entry, err := cat.Lookup(category, specification)
	if err != nil {
		return LineItem{}, err
	}

	if quantity < 0 {
		return LineItem{}, fmt.Errorf("%w: %v", ErrNegativeQuantity, quantity)
	}

	price := entry.Price
	if priceOverride >= 0 {
		price = priceOverride
	}

	return LineItem{
		Category:      category,
		Specification: specification,
		Unit:          entry.Unit,
		Quantity:      quantity,
		UnitPrice:     price,
	}, nil
}

// CostEstimate is the aggregated material cost over all line items.
type CostEstimate struct {
	Total     float64
	Breakdown map[string]float64
	Items     []LineItem
}

// Estimate sums line-item totals and buckets them per category. It is a
// pure aggregation over already-validated items.
func Estimate(items []LineItem) CostEstimate {
	estimate := CostEstimate{
		Breakdown: make(map[string]float64),
		Items:     items,
	}

	for _, item := range items {
		total := item.Total()
		estimate.Total += total
		estimate.Breakdown[item.Category] += total
	}

	return estimate
}
