package validator

// isRequired fails only for nil and the empty string; whitespace counts as a
// value. Pair with minLength for stricter presence checks.
func isRequired(value any, _ string) bool {
	return !isEmptyValue(value)
}

// isOptional reports emptiness when addressed directly as a rule. In a rule
// list the "optional" token is handled by the parser and never dispatched
// here.
func isOptional(value any, _ string) bool {
	return isEmptyValue(value)
}
