package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// ToFloat64 converts various numeric types to float64.
// Returns the converted value and true if successful, or 0 and false if
// conversion fails. A nil input converts to NaN, which the pipeline treats
// as a missing sample.
// Supports: float64, float32, int, int8, int16, int32, int64, uint, uint8,
// uint16, uint32, uint64, json.Number
func ToFloat64(v interface{}) (float64, bool) {
	if v == nil {
		return math.NaN(), true
	}

	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IsNumeric checks if a value can be converted to float64.
func IsNumeric(v interface{}) bool {
	_, ok := ToFloat64(v)
	return ok
}

// ToUnixMilli converts a decoded JSON timestamp to epoch milliseconds.
// Numbers are taken as epoch milliseconds as-is; strings are parsed as
// RFC 3339.
func ToUnixMilli(v interface{}) (int64, error) {
	switch val := v.(type) {
	case string:
		ts, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", val, err)
		}
		return ts.UnixMilli(), nil
	case json.Number:
		ms, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", val.String(), err)
		}
		return ms, nil
	default:
		f, ok := ToFloat64(v)
		if !ok || math.IsNaN(f) {
			return 0, fmt.Errorf("invalid timestamp type %T", v)
		}
		return int64(f), nil
	}
}
