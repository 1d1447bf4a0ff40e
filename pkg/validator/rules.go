package validator

import "context"

// builtinRules assembles the default predicate registry. Keys are derived
// lookup names; each Validator gets its own copy so runtime registration
// never leaks across instances.
func builtinRules() map[string]ContextRuleFunc {
	builtins := map[string]RuleFunc{
		// date comparisons
		"After":         isAfter,
		"AfterOrEqual":  isAfterOrEqual,
		"Before":        isBefore,
		"BeforeOrEqual": isBeforeOrEqual,
		"Date":          isDate,

		// type checks
		"Array":   isArray,
		"Boolean": isBoolean,
		"Integer": isInteger,
		"Numeric": isNumeric,
		"String":  isString,
		"Truthy":  isTruthy,
		"Falsy":   isFalsy,

		// string content and bounds
		"EndingWith":   isEndingWith,
		"StartingWith": isStartingWith,
		"RegexMatch":   isRegexMatch,
		"MinLength":    isMinLength,
		"MaxLength":    isMaxLength,

		// numeric bounds
		"Min": isMin,
		"Max": isMax,

		// formats
		"Email": isEmail,
		"Url":   isURL,
		"Uuid":  isUUID,
		"Json":  isJSON,

		// set membership and equality
		"In":        isIn,
		"NotIn":     isNotIn,
		"Same":      isSame,
		"Different": isDifferent,

		// presence
		"Required": isRequired,
		"Optional": isOptional,
	}

	rules := make(map[string]ContextRuleFunc, len(builtins))
	for name, fn := range builtins {
		rules[name] = adaptRule(fn)
	}
	return rules
}

func adaptRule(fn RuleFunc) ContextRuleFunc {
	return func(_ context.Context, value any, param string) bool {
		return fn(value, param)
	}
}
