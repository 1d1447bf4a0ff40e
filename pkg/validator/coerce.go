package validator

import (
	"fmt"
	"strconv"
	"time"
)

// numericValue extracts a float64 from Go numeric types only. Strings and
// booleans are not numbers here; see toFloat for parseFloat-style coercion.
func numericValue(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// toFloat coerces numbers and numeric strings to float64. Bounds rules (min,
// max) use it so that both 5 and "5" satisfy "min:3".
func toFloat(value any) (float64, bool) {
	if f, ok := numericValue(value); ok {
		return f, true
	}
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// stringify renders a scalar for string-content checks (startingWith,
// endingWith, regexMatch, set membership).
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// toTime coerces a value to a comparison timestamp. Accepted forms:
// time.Time, Go numbers holding epoch milliseconds, and strings holding
// either epoch milliseconds or an RFC 3339 timestamp.
func toTime(value any) (time.Time, bool) {
	switch t := value.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		if ms, err := strconv.ParseInt(t, 10, 64); err == nil {
			return time.UnixMilli(ms), true
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
		return time.Time{}, false
	}
	if f, ok := numericValue(value); ok {
		return time.UnixMilli(int64(f)), true
	}
	return time.Time{}, false
}

// looseEqual backs the same/different rules. The parameter always arrives as
// a string, so equality coerces deliberately: numeric values (including
// numeric strings) compare numerically against numeric parameters, booleans
// compare against "true"/"1" and "false"/"0", nil equals nothing, and
// everything else compares by string rendering.
func looseEqual(value any, param string) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		switch param {
		case "true", "1":
			return b
		case "false", "0":
			return !b
		}
		return false
	}
	if f, ok := toFloat(value); ok {
		if p, err := strconv.ParseFloat(param, 64); err == nil {
			return f == p
		}
	}
	return stringify(value) == param
}
