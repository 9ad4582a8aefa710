package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// newID builds record ids of the form <prefix>_<uuid>.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// notFoundOr maps repositories.ErrNotFound to the service sentinel and wraps anything else.
func notFoundOr(err error, notFound error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseOptionalDateTime accepts RFC3339, a zone-less timestamp or a plain
// date. Missing, blank or unparsable input yields nil and the field keeps
// its current (or default) value.
func parseOptionalDateTime(dateTimeStr *string, field string) *time.Time {
	if dateTimeStr == nil || strings.TrimSpace(*dateTimeStr) == "" {
		return nil
	}
	value := strings.TrimSpace(*dateTimeStr)
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	utils.LogDebug("Ignoring unparsable date", map[string]interface{}{"field": field, "value": value})
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// sum adds money amounts without float drift.
func sum(values ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// toFloat rounds to cents on the way back into JSON numbers.
func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
