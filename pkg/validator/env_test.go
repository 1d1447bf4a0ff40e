package validator_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validkit/validkit/pkg/validator"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("uses defaults when no variables are set", func(t *testing.T) {
		t.Setenv("VALIDATOR_LOCALE", "")
		t.Setenv("VALIDATOR_DEFAULT_FIELD_NAME", "")

		v, err := validator.NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "Value is required", v.GetErrorMessage("required"))
	})

	t.Run("reads locale and field name from the environment", func(t *testing.T) {
		t.Setenv("VALIDATOR_LOCALE", "de")
		t.Setenv("VALIDATOR_DEFAULT_FIELD_NAME", "Feld")

		v, err := validator.NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "Feld is required", v.GetErrorMessage("required"))

		ts := time.Date(2026, time.January, 2, 9, 30, 0, 0, time.Local)
		token := fmt.Sprintf("after:%d", ts.UnixMilli())
		assert.Equal(t, "Feld must be a date after 2. Jan. 2026, 09:30", v.GetErrorMessage(token))
	})

	t.Run("explicit options win over the environment", func(t *testing.T) {
		t.Setenv("VALIDATOR_DEFAULT_FIELD_NAME", "Feld")

		v, err := validator.NewFromEnv(validator.WithDefaultFieldName("Campo"))
		require.NoError(t, err)
		assert.Equal(t, "Campo is required", v.GetErrorMessage("required"))
	})
}
