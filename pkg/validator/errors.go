package validator

import (
	"errors"
	"fmt"
)

// Errors returned by the message-catalog loaders.
var (
	// ErrInvalidMessageCatalog is returned when catalog data cannot be parsed.
	ErrInvalidMessageCatalog = errors.New("invalid message catalog")

	// ErrEmptyMessageCatalog is returned when catalog data parses but
	// contains no templates.
	ErrEmptyMessageCatalog = errors.New("message catalog contains no templates")
)

// UnknownRuleError reports a rule token whose predicate was never registered.
// The engine panics with this error because an unknown rule name is a
// programming error, not a validation failure.
type UnknownRuleError struct {
	Rule string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown validation rule: %s", e.Rule)
}
