package validator

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// LoadMessagesYAML replaces the message catalog with templates parsed from
// YAML data, a flat mapping of rule name to template:
//
//	required: "[FIELD] darf nicht leer sein"
//	min: "[FIELD] muss mindestens [PARAM] sein"
func (v *Validator) LoadMessagesYAML(data []byte) error {
	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return errors.Join(ErrInvalidMessageCatalog, err)
	}
	if len(messages) == 0 {
		return ErrEmptyMessageCatalog
	}
	v.SetErrorMessages(messages)
	return nil
}

// LoadMessagesJSON replaces the message catalog with templates parsed from a
// flat JSON object of rule name to template.
func (v *Validator) LoadMessagesJSON(data []byte) error {
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return errors.Join(ErrInvalidMessageCatalog, err)
	}
	if len(messages) == 0 {
		return ErrEmptyMessageCatalog
	}
	v.SetErrorMessages(messages)
	return nil
}
