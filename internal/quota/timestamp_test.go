package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimestamp(t *testing.T) {
	t.Run("seconds pass through", func(t *testing.T) {
		got, ok := NormalizeTimestamp(int64(1700000000))
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got)
	})

	t.Run("milliseconds are scaled down", func(t *testing.T) {
		got, ok := NormalizeTimestamp(int64(1700000000000))
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got)
	})

	t.Run("float64 from JSON decoding", func(t *testing.T) {
		got, ok := NormalizeTimestamp(float64(1700000000000))
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got)
	})

	t.Run("numeric string", func(t *testing.T) {
		got, ok := NormalizeTimestamp("1700000000")
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got)
	})

	t.Run("numeric string with surrounding whitespace", func(t *testing.T) {
		got, ok := NormalizeTimestamp(" 1700000000 ")
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got)
	})

	t.Run("non-numeric string fails", func(t *testing.T) {
		_, ok := NormalizeTimestamp("not-a-number")
		assert.False(t, ok)
	})

	t.Run("ISO-ish string fails", func(t *testing.T) {
		_, ok := NormalizeTimestamp("2024-01-15T10:00:00Z")
		assert.False(t, ok)
	})

	t.Run("nil fails", func(t *testing.T) {
		_, ok := NormalizeTimestamp(nil)
		assert.False(t, ok)
	})

	t.Run("empty string fails", func(t *testing.T) {
		_, ok := NormalizeTimestamp("")
		assert.False(t, ok)
	})

	t.Run("unsupported type fails", func(t *testing.T) {
		_, ok := NormalizeTimestamp([]any{1})
		assert.False(t, ok)
	})

	t.Run("value at threshold is seconds", func(t *testing.T) {
		got, ok := NormalizeTimestamp(int64(3_000_000_000))
		require.True(t, ok)
		assert.Equal(t, int64(3_000_000_000), got)
	})
}

func TestFormatTimestamp(t *testing.T) {
	t.Run("uses Indonesian month table", func(t *testing.T) {
		// 2023-05-15 00:00:00 local time.
		ts := time.Date(2023, time.May, 15, 8, 30, 5, 0, time.Local).Unix()
		got := FormatTimestamp(ts)
		assert.Equal(t, "15 Mei 2023 08:30:05", got)
	})

	t.Run("zero-pads the day", func(t *testing.T) {
		ts := time.Date(2024, time.August, 3, 0, 0, 0, 0, time.Local).Unix()
		got := FormatTimestamp(ts)
		assert.Equal(t, "03 Agu 2024 00:00:00", got)
	})

	t.Run("unparsable input comes back verbatim", func(t *testing.T) {
		assert.Equal(t, "2024-12-31", FormatTimestamp("2024-12-31"))
	})
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local)

	t.Run("whole days truncate", func(t *testing.T) {
		target := now.Add(49 * time.Hour).Unix()
		got, ok := daysUntilAt(target, now)
		require.True(t, ok)
		assert.Equal(t, 2, got)
	})

	t.Run("later today is zero days", func(t *testing.T) {
		target := now.Add(5 * time.Hour).Unix()
		got, ok := daysUntilAt(target, now)
		require.True(t, ok)
		assert.Equal(t, 0, got)
	})

	t.Run("unparsable input reports failure", func(t *testing.T) {
		_, ok := daysUntilAt("soon", now)
		assert.False(t, ok)
	})
}
