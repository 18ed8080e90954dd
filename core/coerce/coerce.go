package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IntOrZero converts val to an integer, treating null, absent and unparsable
// values as 0. Fractional values are truncated toward zero. Negative values
// are kept (eut may be negative).
func IntOrZero(val any) int64 {
	if i, ok := toInt(val); ok {
		return i
	}
	return 0
}

// OptionalInt converts val to an integer, or nil when it is missing or not numeric.
func OptionalInt(val any) *int64 {
	if _, isBool := val.(bool); isBool {
		return nil
	}
	if i, ok := toInt(val); ok {
		return &i
	}
	return nil
}

// OptionalFloat converts val to a float, or nil when it is missing or not numeric.
// NaN is treated as missing.
func OptionalFloat(val any) *float64 {
	f, ok := toFloat(val)
	if !ok || math.IsNaN(f) {
		return nil
	}
	return &f
}

// OptionalString converts val to a string, keeping null as nil.
func OptionalString(val any) *string {
	switch v := val.(type) {
	case nil:
		return nil
	case string:
		return &v
	case json.Number:
		s := v.String()
		return &s
	case bool:
		s := strconv.FormatBool(v)
		return &s
	default:
		s := fmt.Sprintf("%v", v)
		return &s
	}
}

// OptionalBool converts val to a bool. Booleans and "true"/"false" style
// strings are accepted, everything else is nil.
func OptionalBool(val any) *bool {
	switch v := val.(type) {
	case bool:
		return &v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		return &b
	default:
		return nil
	}
}

// Truthy reports whether val counts as set: not null, not empty, not zero.
func Truthy(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func toInt(val any) (int64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		return truncate(v.Float64())
	case float64:
		return truncate(v, nil)
	case float32:
		return truncate(float64(v), nil)
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		return truncate(strconv.ParseFloat(s, 64))
	default:
		return 0, false
	}
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func truncate(f float64, err error) (int64, bool) {
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
