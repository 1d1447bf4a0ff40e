package validator

import "context"

// std backs the package-level convenience functions. Applications that need
// isolated rule sets or message catalogs should create their own instances
// with New.
var std = New()

// Default returns the package-level Validator instance.
func Default() *Validator { return std }

// Evaluate calls Evaluate on the package-level Validator.
func Evaluate(value any, rules []string) string { return std.Evaluate(value, rules) }

// EvaluateContext calls EvaluateContext on the package-level Validator.
func EvaluateContext(ctx context.Context, value any, rules []string) string {
	return std.EvaluateContext(ctx, value, rules)
}

// IsValid calls IsValid on the package-level Validator.
func IsValid(value any, rules []string) bool { return std.IsValid(value, rules) }

// IsValidContext calls IsValidContext on the package-level Validator.
func IsValidContext(ctx context.Context, value any, rules []string) bool {
	return std.IsValidContext(ctx, value, rules)
}

// IsValidSchema calls IsValidSchema on the package-level Validator.
func IsValidSchema(values map[string]any, schema Schema) bool {
	return std.IsValidSchema(values, schema)
}

// IsValidSchemaContext calls IsValidSchemaContext on the package-level Validator.
func IsValidSchemaContext(ctx context.Context, values map[string]any, schema Schema) bool {
	return std.IsValidSchemaContext(ctx, values, schema)
}

// AddRule registers a rule on the package-level Validator.
func AddRule(name string, fn RuleFunc) { std.AddRule(name, fn) }

// AddRuleContext registers a context-aware rule on the package-level Validator.
func AddRuleContext(name string, fn ContextRuleFunc) { std.AddRuleContext(name, fn) }

// GetErrorMessage renders a failing token via the package-level Validator.
func GetErrorMessage(token string, opts ...MessageOption) string {
	return std.GetErrorMessage(token, opts...)
}

// SetErrorMessages replaces the package-level message catalog.
func SetErrorMessages(messages map[string]string) { std.SetErrorMessages(messages) }

// SetErrorMessage sets one template on the package-level Validator.
func SetErrorMessage(key, template string) { std.SetErrorMessage(key, template) }

// SetLocale sets the package-level locale for date-parameter formatting.
func SetLocale(locale string) { std.SetLocale(locale) }

// SetDefaultFieldName sets the package-level default field name.
func SetDefaultFieldName(name string) { std.SetDefaultFieldName(name) }
