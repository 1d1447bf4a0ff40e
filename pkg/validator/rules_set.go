package validator

import (
	"slices"
	"strings"
)

// Membership rules take a comma-separated option list as their parameter
// ("in:red,green,blue") and compare against the value's string rendering.

func isIn(value any, param string) bool {
	return slices.Contains(strings.Split(param, ","), stringify(value))
}

func isNotIn(value any, param string) bool {
	return !isIn(value, param)
}

func isSame(value any, param string) bool {
	return looseEqual(value, param)
}

func isDifferent(value any, param string) bool {
	return !looseEqual(value, param)
}
