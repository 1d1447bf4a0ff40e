package validator_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/validkit/validkit/pkg/validator"
)

func TestDateRules(t *testing.T) {
	v := validator.New()

	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	millis := func(t time.Time) string { return strconv.FormatInt(t.UnixMilli(), 10) }

	t.Run("after compares against an epoch-milliseconds parameter", func(t *testing.T) {
		assert.True(t, v.IsValid(now, []string{"after:" + millis(yesterday)}))
		assert.False(t, v.IsValid(now, []string{"after:" + millis(tomorrow)}))
		assert.False(t, v.IsValid(now, []string{"after:" + millis(now)}))
	})

	t.Run("afterOrEqual accepts the boundary", func(t *testing.T) {
		assert.True(t, v.IsValid(now, []string{"afterOrEqual:" + millis(now)}))
		assert.False(t, v.IsValid(yesterday, []string{"afterOrEqual:" + millis(now)}))
	})

	t.Run("before and beforeOrEqual mirror after", func(t *testing.T) {
		assert.True(t, v.IsValid(now, []string{"before:" + millis(tomorrow)}))
		assert.False(t, v.IsValid(now, []string{"before:" + millis(now)}))
		assert.True(t, v.IsValid(now, []string{"beforeOrEqual:" + millis(now)}))
	})

	t.Run("value side accepts epoch milliseconds and RFC 3339", func(t *testing.T) {
		assert.True(t, v.IsValid(now.UnixMilli(), []string{"after:" + millis(yesterday)}))
		assert.True(t, v.IsValid(millis(now), []string{"after:" + millis(yesterday)}))
		assert.True(t, v.IsValid(now.Format(time.RFC3339), []string{"after:" + millis(yesterday)}))
	})

	t.Run("unparseable sides fail the rule", func(t *testing.T) {
		assert.False(t, v.IsValid("not a date", []string{"after:" + millis(now)}))
		assert.False(t, v.IsValid(now, []string{"after:not a date"}))
	})

	t.Run("date accepts time.Time only", func(t *testing.T) {
		assert.True(t, v.IsValid(now, []string{"date"}))
		assert.True(t, v.IsValid(&now, []string{"date"}))
		assert.False(t, v.IsValid(now.UnixMilli(), []string{"date"}))
		assert.False(t, v.IsValid("2026-08-26", []string{"date"}))
		assert.False(t, v.IsValid((*time.Time)(nil), []string{"date"}))
	})
}
