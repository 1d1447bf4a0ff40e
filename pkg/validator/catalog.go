package validator

// defaultMessages maps rule base names to their message templates. Templates
// hold at most one [FIELD] and one [PARAM] placeholder.
var defaultMessages = map[string]string{
	"after":         "[FIELD] must be a date after [PARAM]",
	"afterOrEqual":  "[FIELD] must be a date after or equal to [PARAM]",
	"array":         "[FIELD] must be an array",
	"before":        "[FIELD] must be a date before [PARAM]",
	"beforeOrEqual": "[FIELD] must be a date before or equal to [PARAM]",
	"boolean":       "[FIELD] must be true or false",
	"date":          "[FIELD] must be a date",
	"different":     "[FIELD] must be different to [PARAM]",
	"email":         "[FIELD] must be a valid email address",
	"endingWith":    "[FIELD] must end with [PARAM]",
	"falsy":         "[FIELD] must be a falsy value",
	"in":            "[FIELD] must be one of the following options: [PARAM]",
	"integer":       "[FIELD] must be an integer",
	"json":          "[FIELD] must be a parsable JSON string",
	"max":           "[FIELD] must be less than or equal to [PARAM]",
	"maxLength":     "[FIELD] must not be greater than [PARAM] in character length",
	"min":           "[FIELD] must be greater than or equal to [PARAM]",
	"minLength":     "[FIELD] must not be less than [PARAM] in character length",
	"notIn":         "[FIELD] must not be one of the following options: [PARAM]",
	"numeric":       "[FIELD] must be numeric",
	"optional":      "[FIELD] is optional",
	"regexMatch":    "[FIELD] must satisfy the regular expression: [PARAM]",
	"required":      "[FIELD] is required",
	"same":          "[FIELD] must be the same as [PARAM]",
	"startingWith":  "[FIELD] must start with [PARAM]",
	"string":        "[FIELD] must be a string",
	"truthy":        "[FIELD] must be a truthy value",
	"url":           "[FIELD] must be a valid URL",
	"uuid":          "[FIELD] must be a valid UUID",
}
