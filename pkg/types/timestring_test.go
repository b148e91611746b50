package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		for _, raw := range []string{"9:30:00", "25:00", "12:60", "noon", ""} {
			_, err := NewTimeStringFromString(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", raw)
		}
	})
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		result, err := TimeString("10:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:30"), result)
	})

	t.Run("crossing midnight is an error", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		src := time.Date(2026, 3, 15, 14, 5, 0, 0, time.UTC)
		require.NoError(t, ts.Scan(src))
		assert.Equal(t, TimeString("14:05"), ts)
	})

	t.Run("from postgres time string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("21:30:00")))
		assert.Equal(t, TimeString("21:30"), ts)
	})

	t.Run("nil leaves zero value", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("12:99").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
