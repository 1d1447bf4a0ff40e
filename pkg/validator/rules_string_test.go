package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/validkit/validkit/pkg/validator"
)

func TestStringContentRules(t *testing.T) {
	v := validator.New()

	t.Run("startingWith", func(t *testing.T) {
		assert.True(t, v.IsValid("hello world", []string{"startingWith:hello"}))
		assert.False(t, v.IsValid("world hello", []string{"startingWith:hello"}))
		assert.True(t, v.IsValid(12345, []string{"startingWith:12"}), "non-strings compare by rendering")
	})

	t.Run("endingWith", func(t *testing.T) {
		assert.True(t, v.IsValid("hello world", []string{"endingWith:world"}))
		assert.False(t, v.IsValid("world hello", []string{"endingWith:world"}))
	})

	t.Run("regexMatch", func(t *testing.T) {
		assert.True(t, v.IsValid("abc123", []string{`regexMatch:^[a-z]+\d+$`}))
		assert.False(t, v.IsValid("123abc", []string{`regexMatch:^[a-z]+\d+$`}))
	})

	t.Run("regexMatch panics on an invalid pattern", func(t *testing.T) {
		assert.Panics(t, func() {
			v.IsValid("x", []string{"regexMatch:[unclosed"})
		})
	})

	t.Run("minLength counts runes and requires a string", func(t *testing.T) {
		assert.True(t, v.IsValid("abc", []string{"minLength:3"}))
		assert.False(t, v.IsValid("ab", []string{"minLength:3"}))
		assert.True(t, v.IsValid("héllo", []string{"minLength:5"}))
		assert.False(t, v.IsValid(12345, []string{"minLength:3"}), "numbers have no length")
	})

	t.Run("maxLength", func(t *testing.T) {
		assert.True(t, v.IsValid("abc", []string{"maxLength:3"}))
		assert.False(t, v.IsValid("abcd", []string{"maxLength:3"}))
		assert.True(t, v.IsValid("", []string{"maxLength:0"}))
	})

	t.Run("length rules fail on a non-numeric parameter", func(t *testing.T) {
		assert.False(t, v.IsValid("abc", []string{"minLength:many"}))
	})
}
