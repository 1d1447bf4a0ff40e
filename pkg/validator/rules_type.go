package validator

import (
	"math"
	"reflect"
)

func isArray(value any, _ string) bool {
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func isBoolean(value any, _ string) bool {
	_, ok := value.(bool)
	return ok
}

// isInteger accepts Go integer types and floats holding a whole number.
// Numeric strings are not integers; use the numeric rule for those.
func isInteger(value any, _ string) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32, float64:
		f, _ := numericValue(value)
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	}
	return false
}

// isNumeric accepts numbers and strings that parse as numbers.
func isNumeric(value any, _ string) bool {
	f, ok := toFloat(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isString(value any, _ string) bool {
	_, ok := value.(string)
	return ok
}

// isTruthy matches the fixed truthy set: true, 1, "1", "true".
func isTruthy(value any, _ string) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "1" || v == "true"
	}
	f, ok := numericValue(value)
	return ok && f == 1
}

// isFalsy matches the fixed falsy set: false, 0, "0", "false".
func isFalsy(value any, _ string) bool {
	switch v := value.(type) {
	case bool:
		return !v
	case string:
		return v == "0" || v == "false"
	}
	f, ok := numericValue(value)
	return ok && f == 0
}
