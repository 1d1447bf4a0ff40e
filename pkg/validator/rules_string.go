package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

func isStartingWith(value any, param string) bool {
	return strings.HasPrefix(stringify(value), param)
}

func isEndingWith(value any, param string) bool {
	return strings.HasSuffix(stringify(value), param)
}

// isRegexMatch tests the value's string rendering against the parameter
// pattern. An invalid pattern is a programming error in the rule list and
// panics, consistent with the unknown-rule contract.
func isRegexMatch(value any, param string) bool {
	return regexp.MustCompile(param).MatchString(stringify(value))
}

// Length rules apply to strings only and count runes, not bytes.

func isMinLength(value any, param string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	min, err := strconv.Atoi(param)
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(s) >= min
}

func isMaxLength(value any, param string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	max, err := strconv.Atoi(param)
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(s) <= max
}
