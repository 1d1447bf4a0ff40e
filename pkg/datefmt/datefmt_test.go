package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/validkit/validkit/pkg/datefmt"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, time.August, 26, 14, 5, 0, 0, time.UTC)

	t.Run("renders per-locale patterns", func(t *testing.T) {
		cases := []struct {
			locale string
			want   string
		}{
			{"en", "Aug 26, 2026, 14:05"},
			{"en-US", "Aug 26, 2026, 14:05"},
			{"en-GB", "26 Aug 2026, 14:05"},
			{"de", "26. Aug. 2026, 14:05"},
			{"fr", "26 août 2026, 14:05"},
			{"es", "26 ago 2026, 14:05"},
			{"it", "26 ago 2026, 14:05"},
			{"pt", "26 de ago. de 2026, 14:05"},
			{"nl", "26 aug. 2026, 14:05"},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, datefmt.Format(tc.locale, ts), "locale %s", tc.locale)
		}
	})

	t.Run("regional variants fall back to their base language", func(t *testing.T) {
		assert.Equal(t, datefmt.Format("fr", ts), datefmt.Format("fr-CA", ts))
		assert.Equal(t, datefmt.Format("de", ts), datefmt.Format("de-AT", ts))
	})

	t.Run("empty and unknown locales fall back to English", func(t *testing.T) {
		want := datefmt.Format("en", ts)
		assert.Equal(t, want, datefmt.Format("", ts))
		assert.Equal(t, want, datefmt.Format("not a locale!!", ts))
		assert.Equal(t, want, datefmt.Format("zz", ts))
	})

	t.Run("pads the clock to two digits", func(t *testing.T) {
		morning := time.Date(2026, time.January, 2, 9, 5, 0, 0, time.UTC)
		assert.Equal(t, "Jan 2, 2026, 09:05", datefmt.Format("en", morning))
	})
}

func TestLocales(t *testing.T) {
	locales := datefmt.Locales()
	assert.Equal(t, "en", locales[0], "English is the fallback and must come first")
	assert.Contains(t, locales, "de")
	assert.Contains(t, locales, "fr")
}
