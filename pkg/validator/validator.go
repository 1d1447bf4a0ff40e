package validator

import (
	"io"
	"log/slog"
	"maps"
	"sync"
)

// DefaultFieldName is substituted for the [FIELD] placeholder when the caller
// supplies no explicit field name.
const DefaultFieldName = "Value"

// Validator evaluates values against ordered rule-token lists and renders
// error messages for failing rules. The zero value is not usable; construct
// instances with New or NewFromEnv.
//
// All configuration (predicate registry, message catalog, locale, default
// field name) is instance-scoped and guarded by a mutex, so a Validator is
// safe for concurrent use. Mutating configuration while validations are in
// flight is supported but best done once at startup.
type Validator struct {
	mu           sync.RWMutex
	rules        map[string]ContextRuleFunc
	messages     map[string]string
	locale       string
	defaultField string
	logger       *slog.Logger
}

// Option configures a Validator instance.
type Option func(*Validator)

// WithLocale sets the locale tag (BCP 47, e.g. "en-GB") used when formatting
// date-valued rule parameters in error messages.
func WithLocale(locale string) Option {
	return func(v *Validator) {
		if locale != "" {
			v.locale = locale
		}
	}
}

// WithDefaultFieldName sets the field name used when rendering messages for
// which no explicit field was supplied.
func WithDefaultFieldName(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.defaultField = name
		}
	}
}

// WithMessages overrides message templates for the given rule names on top of
// the built-in catalog. Use SetErrorMessages to replace the catalog wholesale.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		maps.Copy(v.messages, messages)
	}
}

// WithLogger provides a logger for diagnostics such as missing message
// templates. If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New creates a Validator with the built-in predicate catalog and default
// message templates, then applies the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules:        builtinRules(),
		messages:     maps.Clone(defaultMessages),
		defaultField: DefaultFieldName,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetLocale sets the locale used for date-parameter formatting in messages.
func (v *Validator) SetLocale(locale string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.locale = locale
}

// SetDefaultFieldName sets the field name used when no explicit field is
// supplied to GetErrorMessage.
func (v *Validator) SetDefaultFieldName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.defaultField = name
}
