package leave

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Candidate keys in priority order. Allocation records from different leave subsystem
// versions name the same figure differently; first non-null wins.
var (
	entitlementKeys = []string{
		"total_leaves",
		"total_allocated_leaves",
		"total_leaves_allocated",
		"new_leaves_allocated",
		"allocated_leaves",
	}
	takenKeys = []string{"leaves_taken", "used_leaves", "leaves_used"}
)

const remainingKey = "remaining_leaves"

// Entitlement returns the annual entitlement days. When no entitlement key yields a positive
// figure the remaining balance is used instead.
func (d Details) Entitlement() decimal.Decimal {
	if v, ok := d.first(entitlementKeys); ok && v.IsPositive() {
		return v
	}
	if v, ok := d.first([]string{remainingKey}); ok {
		return v
	}
	return decimal.Zero
}

// Taken returns the days already used, 0 when absent.
func (d Details) Taken() decimal.Decimal {
	if v, ok := d.first(takenKeys); ok {
		return v
	}
	return decimal.Zero
}

func (d Details) first(keys []string) (decimal.Decimal, bool) {
	for _, key := range keys {
		raw, present := d[key]
		if !present || raw == nil {
			continue
		}
		return toDecimal(raw), true
	}
	return decimal.Zero, false
}

// toDecimal converts a JSON-decoded value; anything non-numeric counts as 0.
func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		if parsed, err := decimal.NewFromString(n.String()); err == nil {
			return parsed
		}
	case string:
		if parsed, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return decimal.Zero
}
