package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// optionalToken opts a rule list into the empty-value short circuit. It must
// be the first token to take effect and is never dispatched as a predicate.
const optionalToken = "optional"

// parsedRule is the structured form of one rule token, valid for the duration
// of a single evaluation.
type parsedRule struct {
	token  string   // original token, returned verbatim on failure
	name   string   // derived registry lookup name
	params []string // ordered parameter parts (nil when the token has none)
}

// isEmptyValue reports whether a value counts as empty for the optional
// short circuit: nil or the empty string.
func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// lookupName derives the registry key for a rule base name by upper-casing
// its first rune: "minLength" -> "MinLength".
func lookupName(base string) string {
	r, size := utf8.DecodeRuneInString(base)
	if r == utf8.RuneError {
		return base
	}
	return string(unicode.ToUpper(r)) + base[size:]
}

// prepareRules normalizes a rule-token list into parsed rules. It returns an
// empty sequence when the list is empty, or when the list leads with
// "optional" and the value is empty (the whole list is skipped). Stray
// "optional" tokens elsewhere are dropped. Pure function.
func prepareRules(value any, rules []string) []parsedRule {
	if len(rules) == 0 {
		return nil
	}
	if rules[0] == optionalToken && isEmptyValue(value) {
		return nil
	}

	prepared := make([]parsedRule, 0, len(rules))
	for _, token := range rules {
		if token == optionalToken {
			continue
		}
		base, rest, hasParams := strings.Cut(token, ":")
		var params []string
		if hasParams {
			params = strings.Split(rest, ":")
		}
		prepared = append(prepared, parsedRule{
			token:  token,
			name:   lookupName(base),
			params: params,
		})
	}
	return prepared
}
