package validator

import (
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/validkit/validkit/pkg/datefmt"
)

// Placeholder tokens recognized in message templates.
const (
	fieldToken = "[FIELD]"
	paramToken = "[PARAM]"
)

// dateParamRules are the rules whose parameter is an epoch-milliseconds
// timestamp and is re-rendered as a locale-formatted date in messages.
var dateParamRules = map[string]struct{}{
	"after":         {},
	"afterOrEqual":  {},
	"before":        {},
	"beforeOrEqual": {},
}

type messageArgs struct {
	field    string
	param    string
	hasParam bool
}

// MessageOption customizes a single GetErrorMessage call.
type MessageOption func(*messageArgs)

// WithField substitutes name for the [FIELD] placeholder instead of the
// configured default field name. An empty name keeps the default.
func WithField(name string) MessageOption {
	return func(a *messageArgs) {
		a.field = name
	}
}

// WithParam overrides the parameter carried by the rule token for the
// [PARAM] placeholder.
func WithParam(param string) MessageOption {
	return func(a *messageArgs) {
		a.param = param
		a.hasParam = true
	}
}

// GetErrorMessage renders the human-readable message for a failing rule
// token. The token's leading segment selects the template; the remainder
// (or a WithParam override) fills [PARAM], and WithField or the configured
// default field name fills [FIELD]. Date-comparison rules expect the
// parameter as epoch milliseconds and render it as a locale-formatted
// date-time. When no parameter is available the [PARAM] placeholder is left
// untouched, which matters for parameter-less rules like "required".
//
// Rendering is pure given the current message, locale, and field
// configuration. A token without a template is returned unchanged.
func (v *Validator) GetErrorMessage(token string, opts ...MessageOption) string {
	var args messageArgs
	for _, opt := range opts {
		opt(&args)
	}

	key, rest, _ := strings.Cut(token, ":")
	param := rest
	if args.hasParam {
		param = args.param
	}

	v.mu.RLock()
	template, ok := v.messages[key]
	locale := v.locale
	field := v.defaultField
	v.mu.RUnlock()

	if !ok {
		v.logger.Warn("no message template for rule", "rule", key)
		return token
	}
	if args.field != "" {
		field = args.field
	}

	if _, isDateRule := dateParamRules[key]; isDateRule && param != "" {
		if ms, err := strconv.ParseInt(param, 10, 64); err == nil {
			param = datefmt.Format(locale, time.UnixMilli(ms))
		}
	}

	message := strings.ReplaceAll(template, fieldToken, field)
	if param != "" {
		message = strings.ReplaceAll(message, paramToken, param)
	}
	return message
}

// SetErrorMessages replaces the message catalog wholesale. Rules missing
// from the new catalog render as their bare token until a template is set.
func (v *Validator) SetErrorMessages(messages map[string]string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = maps.Clone(messages)
	if v.messages == nil {
		v.messages = make(map[string]string)
	}
}

// SetErrorMessage sets or replaces the template for a single rule name.
func (v *Validator) SetErrorMessage(key, template string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages[key] = template
}
