package cmd

import (
	"testing"

	"github.com/ermekov/tenderscope/internal/catalog"
)

func priceOf(v float64) *float64 { return &v }

func TestMaterialConfigLineItem(t *testing.T) {
	t.Parallel()

	cat := catalog.New(map[string]map[string]catalog.Entry{
		"Concrete": {"C25/30": {Unit: "m3", Price: 2800}},
	})

	tests := []struct {
		name     string
		material MaterialConfig
		expect   float64
	}{
		{
			name:     "omitted price keeps catalog default",
			material: MaterialConfig{Category: "Concrete", Specification: "C25/30", Quantity: 10},
			expect:   2800,
		},
		{
			name:     "explicit zero price overrides",
			material: MaterialConfig{Category: "Concrete", Specification: "C25/30", Quantity: 10, UnitPrice: priceOf(0)},
			expect:   0,
		},
		{
			name:     "explicit price overrides",
			material: MaterialConfig{Category: "Concrete", Specification: "C25/30", Quantity: 10, UnitPrice: priceOf(2500)},
			expect:   2500,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			item, err := tt.material.LineItem(cat)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.UnitPrice != tt.expect {
				t.Fatalf("expected unit price %v, got %v", tt.expect, item.UnitPrice)
			}
		})
	}

	if _, err := (MaterialConfig{Category: "Timber", Specification: "pine"}).LineItem(cat); err == nil {
		t.Fatal("expected an error for an unknown material")
	}
}
