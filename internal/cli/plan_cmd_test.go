package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanDate(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC) // a Monday

	t.Run("explicit date", func(t *testing.T) {
		got, err := parsePlanDate("2026-03-05", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("today", func(t *testing.T) {
		got, err := parsePlanDate("today", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("tomorrow", func(t *testing.T) {
		got, err := parsePlanDate("tomorrow", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parsePlanDate("the fifth of never", now)
		assert.Error(t, err)
	})
}

func TestParseDeadline(t *testing.T) {
	got, err := parseDeadline("2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.April, got.Month())

	rfc, err := parseDeadline("2026-04-01T17:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 17, rfc.Hour())

	_, err = parseDeadline("next tuesday-ish")
	assert.Error(t, err)
}
