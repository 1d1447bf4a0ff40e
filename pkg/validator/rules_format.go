package validator

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// emailRegex requires a local part, a domain and an alphanumeric TLD, so
// bare hostnames like "abc@def" are rejected.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.[0-9a-z]+$`)

func isEmail(value any, _ string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return emailRegex.MatchString(strings.ToLower(s))
}

func isURL(value any, _ string) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// isUUID fast-rejects on shape before handing off to the uuid parser.
func isUUID(value any, _ string) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// isJSON passes for strings holding a JSON object, array, or null. A parse
// failure is swallowed and fails the rule; this is the only predicate that
// recovers from malformed input.
func isJSON(value any, _ string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return false
	}
	switch decoded.(type) {
	case map[string]any, []any, nil:
		return true
	}
	return false
}
