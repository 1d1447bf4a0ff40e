package validator

import "strconv"

// Numeric bound rules coerce like parseFloat: numbers and numeric strings
// both qualify. A non-numeric value or parameter fails the rule; rule lists
// always supply a parameter, its absence is a caller error.

func isMin(value any, param string) bool {
	f, ok := toFloat(value)
	if !ok {
		return false
	}
	limit, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return false
	}
	return f >= limit
}

func isMax(value any, param string) bool {
	f, ok := toFloat(value)
	if !ok {
		return false
	}
	limit, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return false
	}
	return f <= limit
}
