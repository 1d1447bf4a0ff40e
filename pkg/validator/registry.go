package validator

import (
	"context"
	"sort"
)

// RuleFunc is a synchronous rule predicate. It receives the value under
// validation and the rule's parameter string ("" for parameter-less rules)
// and reports whether the value passes.
type RuleFunc func(value any, param string) bool

// ContextRuleFunc is a rule predicate that may perform blocking work, such as
// a network-backed uniqueness check. The engine awaits each predicate before
// moving to the next rule, so ordering and short-circuit semantics match the
// synchronous path exactly.
type ContextRuleFunc func(ctx context.Context, value any, param string) bool

// AddRule registers fn as the predicate for the given rule name, overwriting
// any previous registration (built-in or custom) without complaint. The rule
// becomes addressable in token lists under its original name, e.g.
// AddRule("evenNumber", fn) backs the token "evenNumber". Panics if name is
// empty or fn is nil.
func (v *Validator) AddRule(name string, fn RuleFunc) {
	if fn == nil {
		panic("validator: AddRule called with nil predicate")
	}
	v.AddRuleContext(name, func(_ context.Context, value any, param string) bool {
		return fn(value, param)
	})
}

// AddRuleContext registers a context-aware predicate under the given rule
// name, with the same overwrite semantics as AddRule. Synchronous evaluation
// invokes it with context.Background().
func (v *Validator) AddRuleContext(name string, fn ContextRuleFunc) {
	if name == "" {
		panic("validator: AddRuleContext called with empty rule name")
	}
	if fn == nil {
		panic("validator: AddRuleContext called with nil predicate")
	}

	key := lookupName(name)
	v.mu.Lock()
	if _, exists := v.rules[key]; exists {
		v.logger.Debug("overwriting validation rule", "rule", name)
	}
	v.rules[key] = fn
	v.mu.Unlock()
}

// Rules returns the sorted lookup names of all registered rules, built-in
// and custom alike (e.g. "MinLength" for the token "minLength").
func (v *Validator) Rules() []string {
	v.mu.RLock()
	names := make([]string, 0, len(v.rules))
	for key := range v.rules {
		names = append(names, key)
	}
	v.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (v *Validator) rule(name string) (ContextRuleFunc, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fn, ok := v.rules[name]
	return fn, ok
}
