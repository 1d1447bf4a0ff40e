// Package validator provides rule-token based value validation: a value is
// checked against an ordered list of named rules such as "required",
// "min:10" or "in:red,green,blue", stopping at the first rule that fails.
//
// The package ships a fixed catalog of built-in predicates (type checks,
// string and numeric bounds, format checks, date comparisons, set membership)
// and renders human-readable error messages for failing rules with field and
// parameter interpolation, including locale-aware formatting of date
// parameters.
//
// # Architecture
//
// A Validator owns three pieces of state: a predicate registry mapping rule
// names to check functions, a message-template catalog, and rendering
// configuration (locale, default field name). All of it is guarded by a
// single RWMutex, so a configured Validator is safe for concurrent use;
// configuration is typically done once at startup.
//
// Rule tokens use the form `name` or `name:parameter`. A parameter may itself
// contain colons (`regexMatch:^a:b$`); everything after the first colon is
// the parameter. Evaluation is ordered and short-circuits: rules after the
// first failure never run. A leading `optional` token skips the whole list
// when the value is empty (nil or "").
//
// # Usage
//
//	v := validator.New()
//
//	failed := v.Evaluate(5, []string{"required", "integer", "min:10"})
//	if failed != "" {
//	    msg := v.GetErrorMessage(failed, validator.WithField("age"))
//	    // "age must be greater than or equal to 10"
//	}
//
//	ok := v.IsValidSchema(map[string]any{
//	    "name":  "Alice",
//	    "email": "alice@example.com",
//	}, validator.Schema{
//	    "name":  {"required", "minLength:3"},
//	    "email": {"required", "email"},
//	})
//
// Custom rules are registered at runtime and are indistinguishable from
// built-ins:
//
//	v.AddRule("evenNumber", func(value any, _ string) bool {
//	    n, ok := value.(int)
//	    return ok && n%2 == 0
//	})
//	v.IsValid(4, []string{"evenNumber"}) // true
//
// Rules backed by I/O (for example a network uniqueness check) register a
// context-aware predicate and run through EvaluateContext, which awaits each
// predicate in sequence so "first failing rule wins" holds even when checks
// block:
//
//	v.AddRuleContext("uniqueEmail", func(ctx context.Context, value any, _ string) bool {
//	    return lookupIsFree(ctx, value.(string))
//	})
//	ok := v.IsValidContext(ctx, email, []string{"required", "email", "uniqueEmail"})
//
// # Error Handling
//
// A failing validation is not an error value: Evaluate returns the failing
// rule token verbatim (or "" on success) so callers can inspect it or feed it
// to GetErrorMessage. Referencing a rule name that was never registered is a
// programming error and panics with *UnknownRuleError.
//
// A package-level default Validator backs the top-level convenience
// functions (Evaluate, IsValid, AddRule, ...) for applications that want a
// single process-wide instance.
package validator
