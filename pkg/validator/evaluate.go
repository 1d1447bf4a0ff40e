package validator

import (
	"context"
	"strings"
)

// Evaluate checks value against the rule tokens in order and returns the
// first failing token verbatim, or "" when every rule passes. Rules after the
// first failure are never invoked. A leading "optional" token makes an empty
// value (nil or "") pass without running any rule.
//
// Evaluate panics with *UnknownRuleError when a token names a rule that was
// never registered.
func (v *Validator) Evaluate(value any, rules []string) string {
	return v.EvaluateContext(context.Background(), value, rules)
}

// EvaluateContext is Evaluate for rule lists that may include context-aware
// predicates. Predicates run strictly one after another: rule N+1 does not
// start until rule N's result is known, so the first failing rule wins even
// when predicates block on I/O.
func (v *Validator) EvaluateContext(ctx context.Context, value any, rules []string) string {
	for _, r := range prepareRules(value, rules) {
		fn, ok := v.rule(r.name)
		if !ok {
			panic(&UnknownRuleError{Rule: r.token})
		}
		if !fn(ctx, value, strings.Join(r.params, ":")) {
			return r.token
		}
	}
	return ""
}

// IsValid reports whether value passes every rule in the list.
func (v *Validator) IsValid(value any, rules []string) bool {
	return v.Evaluate(value, rules) == ""
}

// IsValidContext reports whether value passes every rule in the list,
// running predicates under the given context.
func (v *Validator) IsValidContext(ctx context.Context, value any, rules []string) bool {
	return v.EvaluateContext(ctx, value, rules) == ""
}
