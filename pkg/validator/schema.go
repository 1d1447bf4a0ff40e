package validator

import "context"

// Schema maps field names to the rule-token lists their values must satisfy.
type Schema map[string][]string

// IsValidSchema validates a keyed collection of values against a schema.
// Every schema key must be present in values; a missing key fails the whole
// schema regardless of its rules. Each present value is then validated
// against its rule list, and the first failing field fails the schema. An
// empty schema is trivially valid.
//
// The result is boolean-only; callers that need to know which rule failed
// should evaluate fields individually with Evaluate.
func (v *Validator) IsValidSchema(values map[string]any, schema Schema) bool {
	return v.IsValidSchemaContext(context.Background(), values, schema)
}

// IsValidSchemaContext is IsValidSchema for schemas whose rule lists include
// context-aware predicates.
func (v *Validator) IsValidSchemaContext(ctx context.Context, values map[string]any, schema Schema) bool {
	for field, rules := range schema {
		value, ok := values[field]
		if !ok {
			return false
		}
		if !v.IsValidContext(ctx, value, rules) {
			return false
		}
	}
	return true
}
