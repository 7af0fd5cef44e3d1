package logger

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldTenderID is the structured log field key for the tender identifier.
	FieldTenderID = "tender_id"
	// FieldRecommendation is the structured log field key for the final tier.
	FieldRecommendation = "recommendation"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields,
// trimming whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is
// returned unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ResultFields returns the standard fields summarizing one evaluation.
// Empty values are ignored to keep log entries compact.
func ResultFields(tenderID string, totalScore int, roiScore float64, recommendation string) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldTenderID, Value: tenderID},
		StringField{Key: FieldRecommendation, Value: recommendation},
	)

	fields = append(fields,
		zap.Int("total_score", totalScore),
		zap.String("roi_score", strconv.FormatFloat(roiScore, 'f', 1, 64)),
	)

	return fields
}
