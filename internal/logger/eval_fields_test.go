package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "tender_id", Value: "T-1"},
		StringField{Key: "   ", Value: "ignored"},
		StringField{Key: "recommendation", Value: "  "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "tender_id" {
		t.Fatalf("unexpected key: %q", fields[0].Key)
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	t.Parallel()

	logger := WithFields(nil, zap.String("k", "v"))
	if logger == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestResultFields(t *testing.T) {
	t.Parallel()

	fields := ResultFields("T-1", 42, 73.25, "pursue")

	keys := make(map[string]bool, len(fields))
	for _, field := range fields {
		keys[field.Key] = true
	}

	for _, want := range []string{FieldTenderID, FieldRecommendation, "total_score", "roi_score"} {
		if !keys[want] {
			t.Fatalf("missing field %q in %v", want, keys)
		}
	}
}

func TestResultFieldsOmitsEmptyTenderID(t *testing.T) {
	t.Parallel()

	fields := ResultFields("", 10, 0, "avoid")
	for _, field := range fields {
		if field.Key == FieldTenderID {
			t.Fatal("expected tender_id to be omitted when empty")
		}
	}
}
